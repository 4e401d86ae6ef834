package app

import (
	"encoding/json"

	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// plainValue returns the current value of access as plain Go data that the
// JSON and YAML encoders render naturally.
func plainValue(access param.Access) any {
	v := access.Get()
	val, ok := v.(cty.Value)
	if !ok {
		return v
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil
	}
	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return val.GoString()
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return string(raw)
	}
	return out
}

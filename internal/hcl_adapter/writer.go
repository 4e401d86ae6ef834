package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/paramgrid/internal/refgroup"
	"github.com/zclconf/go-cty/cty"
)

// WriteExported renders groups as an exported_parameters block that Load
// reads back unchanged.
func WriteExported(groups *refgroup.Collection) []byte {
	f := hclwrite.NewEmptyFile()
	exported := f.Body().AppendNewBlock("exported_parameters", nil).Body()

	for i, g := range groups.Groups() {
		if i > 0 {
			exported.AppendNewline()
		}
		body := exported.AppendNewBlock("group", []string{g.Name()}).Body()
		if g.Description() != "" {
			body.SetAttributeValue("description", cty.StringVal(g.Description()))
		}
		for _, ref := range g.Content() {
			rb := body.AppendNewBlock("reference", nil).Body()
			rb.SetAttributeValue("path", cty.StringVal(ref.Path))
			if ref.CustomName != "" {
				rb.SetAttributeValue("custom_name", cty.StringVal(ref.CustomName))
			}
			if ref.CustomDescription != "" {
				rb.SetAttributeValue("custom_description", cty.StringVal(ref.CustomDescription))
			}
		}
	}
	return hclwrite.Format(f.Bytes())
}

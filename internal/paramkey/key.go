package paramkey

import (
	"fmt"
	"strings"
)

// Separator joins the segments of a global key.
const Separator = "/"

// Key is a parsed global key.
type Key struct {
	Segments []string
}

// Join concatenates segments into a global key string. Empty segments are
// kept verbatim so that Join and Split stay inverse for any segment list.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Split breaks a global key into its segments. An empty key yields no segments.
func Split(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, Separator)
}

// Parse creates a Key from its canonical string representation.
func Parse(raw string) (*Key, error) {
	if raw == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}

	k := &Key{}
	for _, segment := range strings.Split(raw, Separator) {
		if segment == "" {
			return nil, fmt.Errorf("key %q contains empty segment", raw)
		}
		k.Segments = append(k.Segments, segment)
	}
	return k, nil
}

// String serializes the Key into its canonical form.
func (k *Key) String() string {
	if k == nil {
		return ""
	}
	return Join(k.Segments...)
}

package schema

import "github.com/hashicorp/hcl/v2"

// File represents the top-level structure of a pipeline file.
type File struct {
	FormatVersion *string               `hcl:"format_version,optional"`
	Nodes         []*Node               `hcl:"node,block"`
	Exported      []*ExportedParameters `hcl:"exported_parameters,block"`
}

// Node represents a `node` block: one pipeline node and its parameters.
type Node struct {
	ID          string        `hcl:"id,label"`
	Name        string        `hcl:"name,optional"`
	Description string        `hcl:"description,optional"`
	Parameters  []*Parameter  `hcl:"parameter,block"`
	Collections []*Collection `hcl:"collection,block"`
}

// Collection represents a nested `collection` block. Collections nest to any
// depth.
type Collection struct {
	Key         string        `hcl:"key,label"`
	Name        string        `hcl:"name,optional"`
	Description string        `hcl:"description,optional"`
	Hidden      bool          `hcl:"hidden,optional"`
	UIOrder     int           `hcl:"ui_order,optional"`
	Parameters  []*Parameter  `hcl:"parameter,block"`
	Collections []*Collection `hcl:"collection,block"`
}

// Parameter represents a `parameter` block. Type and Default are kept as
// expressions; the type is an HCL type expression such as `list(number)`.
type Parameter struct {
	Key         string         `hcl:"key,label"`
	Type        hcl.Expression `hcl:"type,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
	Name        string         `hcl:"name,optional"`
	Description string         `hcl:"description,optional"`
	Hidden      bool           `hcl:"hidden,optional"`
	Important   bool           `hcl:"important,optional"`
	UIOrder     int            `hcl:"ui_order,optional"`
	Transient   bool           `hcl:"transient,optional"`
}

// ExportedParameters represents the `exported_parameters` block.
type ExportedParameters struct {
	Groups []*Group `hcl:"group,block"`
}

// Group represents one `group` of exported references.
type Group struct {
	Name        string       `hcl:"name,label"`
	Description string       `hcl:"description,optional"`
	References  []*Reference `hcl:"reference,block"`
}

// Reference represents a `reference` block pointing at a parameter by key.
type Reference struct {
	Path              string `hcl:"path"`
	CustomName        string `hcl:"custom_name,optional"`
	CustomDescription string `hcl:"custom_description,optional"`
}

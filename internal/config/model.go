package config

import (
	"github.com/Masterminds/semver/v3"
	"github.com/specialistvlad/paramgrid/internal/paramref"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of a pipeline.
type Model struct {
	// FormatVersion is the highest version declared by any loaded file.
	FormatVersion *semver.Version
	Nodes         []*Node
	Exported      []*ExportedGroup
}

// Node is one pipeline node.
type Node struct {
	ID          string
	Name        string
	Description string
	Parameters  []*Parameter
	Collections []*Collection
}

// Collection is a nested parameter collection of a node.
type Collection struct {
	Key         string
	Name        string
	Description string
	Hidden      bool
	UIOrder     int
	Parameters  []*Parameter
	Collections []*Collection
}

// Parameter is one declared parameter. Default is already converted to Type.
type Parameter struct {
	Key         string
	Name        string
	Description string
	Type        cty.Type
	Default     cty.Value
	Hidden      bool
	Important   bool
	UIOrder     int
	Transient   bool
}

// ExportedGroup is one group of exported references.
type ExportedGroup struct {
	Name        string
	Description string
	References  []*paramref.Reference
}

// Package schema defines the gohcl-tagged structs that mirror the HCL
// pipeline file format. They are decoded by the hcl_adapter loader and
// translated into the format-agnostic config model; nothing else should
// depend on them.
package schema

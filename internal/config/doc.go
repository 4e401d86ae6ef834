// Package config defines the format-agnostic pipeline model, the Loader
// interface implemented by format-specific loaders, and NewPipeline, which
// turns a model into a live graph with its exported reference groups.
//
// The Model is the single source of truth handed from a loader to the rest
// of the application. The HCL implementation lives in hcl_adapter.
package config

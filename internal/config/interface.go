package config

import (
	"context"
	"errors"
)

// ErrUnsupportedVersion is returned when a file declares a format_version
// outside the supported range.
var ErrUnsupportedVersion = errors.New("unsupported pipeline format version")

// ErrNoFiles is returned when none of the given paths holds a pipeline file.
var ErrNoFiles = errors.New("no pipeline files found")

// Loader is the interface for a format-specific pipeline loader.
type Loader interface {
	// Load reads every pipeline file found under paths and merges them into
	// one model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

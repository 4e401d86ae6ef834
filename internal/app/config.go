package app

import "errors"

// Config holds everything needed to construct an App.
type Config struct {
	// Paths are pipeline files or directories of .hcl files.
	Paths []string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one pipeline path is required")
	}
	return &cfg, nil
}

package hcl_adapter

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/specialistvlad/paramgrid/internal/config"
)

// SupportedFormat is the range of format_version values this loader reads.
const SupportedFormat = ">= 1.0.0, < 2.0.0"

// DefaultFormatVersion is assumed for files without format_version.
const DefaultFormatVersion = "1.0.0"

var defaultVersion = semver.MustParse(DefaultFormatVersion)

func checkFormatVersion(raw *string) (*semver.Version, error) {
	if raw == nil {
		return defaultVersion, nil
	}
	v, err := semver.NewVersion(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid format_version %q: %w", *raw, err)
	}
	constraint, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		return nil, err
	}
	if !constraint.Check(v) {
		return nil, fmt.Errorf("%w: %s (supported: %s)", config.ErrUnsupportedVersion, v, SupportedFormat)
	}
	return v, nil
}

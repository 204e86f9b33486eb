package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/depgraph/internal/visitor"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPaths []string // hcl files or directories

	LogFormat string // "text" (default) or "json"
	LogLevel  string // "debug", "info" (default), "warn" or "error"
	KeyMode   string // "dependency" (default) or "artifact"

	// Variables are exposed to manifests as var.<name>.
	Variables map[string]string
}

// NewConfig validates cfg and returns a copy with defaults filled in. All
// problems are reported together.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error

	if len(cfg.ManifestPaths) == 0 {
		errs = append(errs, errors.New("ManifestPaths is a required configuration field and cannot be empty"))
	}
	for i, p := range cfg.ManifestPaths {
		if p == "" {
			errs = append(errs, fmt.Errorf("ManifestPaths[%d] cannot be empty", i))
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	} else if _, ok := logLevels[cfg.LogLevel]; !ok {
		errs = append(errs, fmt.Errorf("invalid LogLevel %q: must be one of debug, info, warn, error", cfg.LogLevel))
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid LogFormat %q: must be 'text' or 'json'", cfg.LogFormat))
	}

	if mode, err := visitor.ParseKeyMode(cfg.KeyMode); err != nil {
		errs = append(errs, err)
	} else {
		cfg.KeyMode = mode.String()
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	cfg.ManifestPaths = append([]string(nil), cfg.ManifestPaths...)
	if cfg.Variables != nil {
		vars := make(map[string]string, len(cfg.Variables))
		for k, v := range cfg.Variables {
			vars[k] = v
		}
		cfg.Variables = vars
	}
	return &cfg, nil
}

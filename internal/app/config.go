package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	SitePath string // site .hcl file, or a directory of them

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	DryRun          bool
}

// NewConfig validates a Config before the app is built.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SitePath == "" {
		return nil, errors.New("SitePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

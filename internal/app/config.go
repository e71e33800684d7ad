package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestsPath points at a single .hcl manifest or a directory tree of
	// them. Empty means only the compiled-in widget modules are available.
	ManifestsPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults for unset fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}

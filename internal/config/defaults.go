package config

const (
	defaultProvider    = "gemini"
	defaultConcurrency = 3
	defaultBatchSize   = 50
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Translate: Translate{
			Provider:    defaultProvider,
			Concurrency: defaultConcurrency,
			BatchSize:   defaultBatchSize,
		},
	}
}

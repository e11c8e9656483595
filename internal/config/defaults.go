package config

const (
	defaultJobs          = 1
	defaultToolTimeout   = 300
	defaultZipProbeLimit = 99
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Verify: Verify{
			Jobs:          defaultJobs,
			ToolTimeout:   defaultToolTimeout,
			ZipProbeLimit: defaultZipProbeLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

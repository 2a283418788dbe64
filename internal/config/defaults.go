package config

const (
	DefaultBaseAddress          = "http://localhost:7860"
	DefaultMaxReconnectAttempts = 10
	DefaultReconnectDelay       = "1s"
	DefaultDifficulty           = "all"
	DefaultQuestionCount        = 10
	DefaultExportOutputDir      = "."
	DefaultLogLevel             = "info"
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		BaseAddress: DefaultBaseAddress,
		Channel: ChannelConfig{
			MaxReconnectAttempts: DefaultMaxReconnectAttempts,
			ReconnectDelay:       DefaultReconnectDelay,
		},
		Interview: InterviewConfig{
			Difficulty:    DefaultDifficulty,
			QuestionCount: DefaultQuestionCount,
		},
		Export: ExportConfig{
			OutputDir: DefaultExportOutputDir,
		},
		LogLevel: DefaultLogLevel,
	}
}

package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "HUNT_BASE_ADDRESS",
		apply: func(c *Config, v string) {
			c.BaseAddress = v
		},
	},
	{
		envVar: "HUNT_EXPORT_DIR",
		apply: func(c *Config, v string) {
			c.Export.OutputDir = v
		},
	},
	{
		envVar: "HUNT_LOG_LEVEL",
		apply: func(c *Config, v string) {
			c.LogLevel = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}

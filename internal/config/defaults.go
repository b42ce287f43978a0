package config

import "github.com/ziadkadry99/showcase/internal/catalog"

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".showcase.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentDir:      "public/data",
		Host:            "127.0.0.1",
		Port:            8080,
		SelectionPolicy: string(catalog.PolicyRetain),
		LogLevel:        "info",
		LogFormat:       LogConsole,
		ExportDir:       "export",
	}
}

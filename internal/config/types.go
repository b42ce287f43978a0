package config

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// Config is the top-level showcase configuration, corresponding to .showcase.yml.
type Config struct {
	// ContentDir is a local directory holding docs/, workflows/ and the
	// top-level assets. ContentURL, when set, takes precedence.
	ContentDir string `yaml:"content_dir" koanf:"content_dir"`
	ContentURL string `yaml:"content_url" koanf:"content_url"`

	Host            string `yaml:"host" koanf:"host"`
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	// SelectionPolicy is retain or clear.
	SelectionPolicy string `yaml:"selection_policy" koanf:"selection_policy"`

	LogLevel  string    `yaml:"log_level" koanf:"log_level"`
	LogFormat LogFormat `yaml:"log_format" koanf:"log_format"`

	Watch     bool   `yaml:"watch" koanf:"watch"`
	ExportDir string `yaml:"export_dir" koanf:"export_dir"`
}

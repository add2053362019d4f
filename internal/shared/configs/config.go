package configs

// Config holds all configuration for the probe and the fake admin server.
type Config struct {
	Target     TargetConfig     `mapstructure:"target" validate:"required"`
	Export     ExportConfig     `mapstructure:"export"`
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	Artifacts  ArtifactsConfig  `mapstructure:"artifacts"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	FakeServer FakeServerConfig `mapstructure:"fake_server" validate:"required"`
}

// TargetConfig describes the admin API under test.
type TargetConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"required,url"`
	Timeout   int    `mapstructure:"timeout" validate:"min=0"` // seconds, 0 disables the timeout
	UserAgent string `mapstructure:"user_agent" validate:"required"`
}

// ExportConfig tunes export checks.
type ExportConfig struct {
	// StrictCSVContentType requires the content-type header to equal "text/csv" exactly.
	StrictCSVContentType bool `mapstructure:"strict_csv_content_type"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// ArtifactsConfig controls saving of export bodies. Empty Dir disables it.
type ArtifactsConfig struct {
	Dir string `mapstructure:"dir"`
}

// MetricsConfig controls the prometheus textfile written after a run. Empty Textfile disables it.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// FakeServerConfig holds configuration of the in-memory admin server.
type FakeServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	SeedCount         int `mapstructure:"seed_count" validate:"min=0"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)

	Faults FakeFaultsConfig `mapstructure:"faults"`
}

// FakeFaultsConfig makes the in-memory admin server misbehave, to see how the probe reports it.
type FakeFaultsConfig struct {
	LoggerUnavailable   bool   `mapstructure:"logger_unavailable"`
	ApplicationError    string `mapstructure:"application_error"`
	CSVContentType      string `mapstructure:"csv_content_type"`
	MalformedJSONExport bool   `mapstructure:"malformed_json_export"`
}

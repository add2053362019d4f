package configs

import (
	"fmt"
	"strings"

	"log-admin-probe/internal/shared/validators"

	"github.com/spf13/viper"
)

const (
	DefaultBaseURL   = "http://localhost:8080"
	DefaultUserAgent = "log-admin-probe/1.0"

	envPrefix = "PROBE"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("target.base_url", DefaultBaseURL)
	v.SetDefault("target.timeout", 0)
	v.SetDefault("target.user_agent", DefaultUserAgent)
	v.SetDefault("export.strict_csv_content_type", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("artifacts.dir", "")
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("fake_server.port", 8080)
	v.SetDefault("fake_server.seed_count", 5)
	v.SetDefault("fake_server.read_header_timeout", 5)
	v.SetDefault("fake_server.read_timeout", 10)
	v.SetDefault("fake_server.write_timeout", 10)
	v.SetDefault("fake_server.idle_timeout", 60)
	v.SetDefault("fake_server.faults.logger_unavailable", false)
	v.SetDefault("fake_server.faults.application_error", "")
	v.SetDefault("fake_server.faults.csv_content_type", "")
	v.SetDefault("fake_server.faults.malformed_json_export", false)
}

// LoadConfig reads configuration from defaults, an optional file and PROBE_* environment
// variables, then validates it. An empty configPath skips the file.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Target.BaseURL = strings.TrimRight(cfg.Target.BaseURL, "/")

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "fakeserver.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.FakeServer.Port" -> "fakeserver.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "url":
		msg = fmt.Sprintf("%s (url)", field)
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}

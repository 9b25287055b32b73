package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`

	JWTSecret   string        `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	JWTIssuer   string        `mapstructure:"jwt_issuer" yaml:"jwt_issuer"`
	JWTAudience string        `mapstructure:"jwt_audience" yaml:"jwt_audience"`
	JWTTTL      time.Duration `mapstructure:"jwt_ttl" yaml:"jwt_ttl"`

	ExecURL     string        `mapstructure:"exec_url" yaml:"exec_url"`
	ExecTimeout time.Duration `mapstructure:"exec_timeout" yaml:"exec_timeout"`

	// WSMessageLimit caps inbound WebSocket messages per connection per
	// minute. Zero disables the limit.
	WSMessageLimit int `mapstructure:"ws_message_limit" yaml:"ws_message_limit"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		DatabasePath:      "codeboard.db",
		JWTSecret:         "dev-secret-change-me",
		JWTIssuer:         "codeboard",
		JWTAudience:       "codeboard",
		JWTTTL:            time.Hour,
		ExecURL:           "https://emkc.org/api/v2/piston/execute",
		ExecTimeout:       15 * time.Second,
		WSMessageLimit:    0,
	}
}

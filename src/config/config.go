// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigFile names the environment variable holding the config path.
	EnvConfigFile = "CERTINFO_CONFIG_FILE"
	// EnvPort overrides the service listen port.
	EnvPort = "PORT"

	// DefaultPort is the service listen port when nothing else is set.
	DefaultPort = "8000"
)

// ErrInvalidConfig is returned when configuration values fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config represents the certificate-info configuration structure.
type Config struct {
	Server         Server         `json:"server" yaml:"server"`
	Fetch          Fetch          `json:"fetch" yaml:"fetch"`
	Classification Classification `json:"classification" yaml:"classification"`
	Cache          Cache          `json:"cache" yaml:"cache"`
	Client         Client         `json:"client" yaml:"client"`
	Log            Log            `json:"log" yaml:"log"`
}

// Server configures the HTTP classification service.
type Server struct {
	// Address: listen address in host:port form
	Address string `json:"address" yaml:"address"`
}

// Fetch configures the certificate fetcher.
type Fetch struct {
	// TimeoutMillis: connect+handshake bound in milliseconds
	TimeoutMillis int `json:"timeoutMillis" yaml:"timeoutMillis"`
	// Port: remote TLS port
	Port int `json:"port" yaml:"port"`
	// Fingerprint: ClientHello shape (go, chrome, firefox, safari)
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	// RatePerSecond: outbound handshake rate (0 disables limiting)
	RatePerSecond float64 `json:"ratePerSecond,omitempty" yaml:"ratePerSecond,omitempty"`
	// Burst: handshakes allowed at once when rate limited
	Burst int `json:"burst,omitempty" yaml:"burst,omitempty"`
}

// Classification configures the expiration urgency windows.
type Classification struct {
	ErrorDays   int `json:"errorDays" yaml:"errorDays"`
	WarningDays int `json:"warningDays" yaml:"warningDays"`
}

// Cache configures the optional bound and lifetime of cached records.
type Cache struct {
	// MaxEntries: 0 means unbounded
	MaxEntries int `json:"maxEntries,omitempty" yaml:"maxEntries,omitempty"`
	// TTLSeconds: 0 means entries live for the process lifetime
	TTLSeconds int `json:"ttlSeconds,omitempty" yaml:"ttlSeconds,omitempty"`
}

// Client configures the service client used by the native host.
type Client struct {
	Endpoint      string `json:"endpoint" yaml:"endpoint"`
	TimeoutMillis int    `json:"timeoutMillis" yaml:"timeoutMillis"`
	Attempts      int    `json:"attempts" yaml:"attempts"`
}

// Log configures the service logger.
type Log struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: Server{Address: ":" + DefaultPort},
		Fetch: Fetch{
			TimeoutMillis: 1000,
			Port:          443,
			Fingerprint:   "go",
		},
		Classification: Classification{
			ErrorDays:   certinfo.DefaultThresholds.ErrorDays,
			WarningDays: certinfo.DefaultThresholds.WarningDays,
		},
		Client: Client{
			Endpoint:      "http://localhost:" + DefaultPort + "/cert",
			TimeoutMillis: 2000,
			Attempts:      3,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - path: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config with defaults applied
//   - An error if the file cannot be read, parsed or validated
//
// Configuration Priority:
//  1. Default values are set
//  2. CERTINFO_CONFIG_FILE is checked if path is empty
//  3. Config file values override defaults
//  4. PORT overrides the port of server.address
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshal(data, cfg, detectFormat(path)); err != nil {
			return nil, err
		}
	}

	if port := strings.TrimSpace(os.Getenv(EnvPort)); port != "" {
		cfg.Server.Address = withPort(cfg.Server.Address, port)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration file format based on file extension.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes data over cfg, keeping defaults for absent keys.
func unmarshal(data []byte, cfg *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// withPort replaces the port of a host:port address.
func withPort(address, port string) string {
	host := address
	if i := strings.LastIndex(address, ":"); i >= 0 {
		host = address[:i]
	}
	return host + ":" + port
}

// Validate checks every section and wraps failures in [ErrInvalidConfig].
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Server),
		validation.Field(&c.Fetch),
		validation.Field(&c.Classification),
		validation.Field(&c.Cache),
		validation.Field(&c.Client),
		validation.Field(&c.Log),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	return nil
}

// Validate implements [validation.Validatable].
func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required, validation.By(listenAddress)),
	)
}

// listenAddress accepts host:port with an optional host, such as ":8000".
func listenAddress(value any) error {
	addr, _ := value.(string)
	_, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return errors.New("must be a listen address in host:port form")
	}
	return nil
}

// Validate implements [validation.Validatable].
func (f Fetch) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.TimeoutMillis, validation.Required, validation.Min(1)),
		validation.Field(&f.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&f.Fingerprint, validation.In("go", "chrome", "firefox", "safari")),
		validation.Field(&f.RatePerSecond, validation.Min(0.0)),
		validation.Field(&f.Burst, validation.Min(0)),
	)
}

// Validate implements [validation.Validatable].
func (c Classification) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ErrorDays, validation.Required, validation.Min(1)),
		validation.Field(&c.WarningDays, validation.Required, validation.Min(c.ErrorDays+1).
			Error(fmt.Sprintf("must be greater than errorDays (%d)", c.ErrorDays))),
	)
}

// Validate implements [validation.Validatable].
func (c Cache) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MaxEntries, validation.Min(0)),
		validation.Field(&c.TTLSeconds, validation.Min(0)),
	)
}

// Validate implements [validation.Validatable].
func (c Client) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Endpoint, validation.Required, is.URL),
		validation.Field(&c.TimeoutMillis, validation.Required, validation.Min(1)),
		validation.Field(&c.Attempts, validation.Required, validation.Min(1), validation.Max(10)),
	)
}

// Validate implements [validation.Validatable].
func (l Log) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("trace", "debug", "info", "warn", "warning", "error")),
		validation.Field(&l.Format, validation.In("text", "json")),
	)
}

// Timeout returns the fetch timeout as a duration.
func (f Fetch) Timeout() time.Duration { return time.Duration(f.TimeoutMillis) * time.Millisecond }

// Thresholds returns the classification windows.
func (c Classification) Thresholds() certinfo.Thresholds {
	return certinfo.Thresholds{ErrorDays: c.ErrorDays, WarningDays: c.WarningDays}
}

// TTL returns the cache entry lifetime; zero means no expiry.
func (c Cache) TTL() time.Duration { return time.Duration(c.TTLSeconds) * time.Second }

// Timeout returns the client request timeout as a duration.
func (c Client) Timeout() time.Duration { return time.Duration(c.TimeoutMillis) * time.Millisecond }

// Package config loads service configuration from GLAMOUR_* environment
// variables and exposes the engine settings the state tracker reads.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/state"
)

// Storage backends for stored designs
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds everything the server needs at startup
type Config struct {
	GRPCPort int `env:"GLAMOUR_GRPC_PORT" envDefault:"50051"`

	LogLevel  string `env:"GLAMOUR_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"GLAMOUR_LOG_FORMAT" envDefault:"text"`

	Storage    string   `env:"GLAMOUR_STORAGE"     envDefault:"memory"`
	RedisAddrs []string `env:"GLAMOUR_REDIS_ADDRS" envSeparator:","`
	RedisDB    int      `env:"GLAMOUR_REDIS_DB"`

	NatsURL         string        `env:"GLAMOUR_NATS_URL"`
	NatsEmbedded    bool          `env:"GLAMOUR_NATS_EMBEDDED"`
	NatsPort        int           `env:"GLAMOUR_NATS_PORT"          envDefault:"4222"`
	NatsStartupWait time.Duration `env:"GLAMOUR_NATS_STARTUP_WAIT"  envDefault:"10s"`
	RedrawPrefix    string        `env:"GLAMOUR_REDRAW_SUBJECT_PREFIX"`

	StateEnabled          bool   `env:"GLAMOUR_ENABLED"                     envDefault:"true"`
	SkipInvalidCustomize  bool   `env:"GLAMOUR_SKIP_INVALID_CUSTOMIZATIONS" envDefault:"true"`
	RestrictedGearEnabled bool   `env:"GLAMOUR_RESTRICTED_GEAR_PROTECTION"  envDefault:"true"`
	RestrictedGearFile    string `env:"GLAMOUR_RESTRICTED_GEAR_FILE"`
	AutoDesignsEnabled    bool   `env:"GLAMOUR_ENABLE_AUTO_DESIGNS"         envDefault:"true"`
	AutoRedrawEquipment   bool   `env:"GLAMOUR_AUTO_REDRAW_EQUIP"`
}

var _ state.Settings = (*Config)(nil)

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// Validate checks field ranges and cross-field requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)

	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		if len(c.RedisAddrs) == 0 {
			vb.Field("RedisAddrs", "is required when storage is redis")
		}
	default:
		vb.Fieldf("Storage", "unknown backend %q", c.Storage)
	}

	if c.NatsEmbedded && c.NatsURL != "" {
		vb.Field("NatsURL", "cannot be combined with an embedded server")
	}
	if c.NatsEmbedded {
		errors.ValidateRange("NatsPort", c.NatsPort, -1, 65535, vb)
	}

	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		vb.Fieldf("LogFormat", "unknown format %q", c.LogFormat)
	}

	return vb.Build()
}

// Enabled implements state.Settings
func (c *Config) Enabled() bool {
	return c.StateEnabled
}

// SkipInvalidCustomizations implements state.Settings
func (c *Config) SkipInvalidCustomizations() bool {
	return c.SkipInvalidCustomize
}

// RestrictedGearProtection implements state.Settings
func (c *Config) RestrictedGearProtection() bool {
	return c.RestrictedGearEnabled
}

// AutoDesigns implements state.Settings
func (c *Config) AutoDesigns() bool {
	return c.AutoDesignsEnabled
}

// AutoRedrawEquip implements state.Settings
func (c *Config) AutoRedrawEquip() bool {
	return c.AutoRedrawEquipment
}

// Logger builds the process logger described by LogLevel and LogFormat
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

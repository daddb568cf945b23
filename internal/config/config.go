// Package config carga la configuración desde env (y un .env opcional) con Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"checkin-tracker/internal/domain/scanner"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DBDSN vacío => store in-memory.
	DBDSN string `mapstructure:"DB_DSN"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	// LocationFixWait: cuánto esperar un fix nuevo al normalizar. 0 = acepta el último conocido.
	LocationFixWait time.Duration `mapstructure:"LOCATION_FIX_WAIT"`
	// StrictEmptyName: nombre manual vacío => 400 en vez de ignorarlo.
	StrictEmptyName bool   `mapstructure:"STRICT_EMPTY_NAME"`
	MapTimeLayout   string `mapstructure:"MAP_TIME_LAYOUT"`

	ScanTimeout          time.Duration `mapstructure:"SCAN_TIMEOUT"`
	MsgUnconfigured      string        `mapstructure:"MSG_UNCONFIGURED"`
	MsgCorruptPayload    string        `mapstructure:"MSG_CORRUPT_PAYLOAD"`
	MsgTooManyTags       string        `mapstructure:"MSG_TOO_MANY_TAGS"`
	MsgUnsupportedKind   string        `mapstructure:"MSG_UNSUPPORTED_KIND"`
	MsgConnectionFailure string        `mapstructure:"MSG_CONNECTION_FAILURE"`

	// Publicación opcional de check-ins.
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string `mapstructure:"KAFKA_TOPIC"`

	// GeoURL: si está, la ubicación se pide a este endpoint en vez de esperar PUT /location.
	GeoURL     string        `mapstructure:"GEO_URL"`
	GeoTimeout time.Duration `mapstructure:"GEO_TIMEOUT"`
}

// Load lee .env (si existe), después env. Env pisa .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // .env es opcional

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "checkin-tracker")
	v.SetDefault("LOCATION_FIX_WAIT", "0s")
	v.SetDefault("STRICT_EMPTY_NAME", false)
	v.SetDefault("MAP_TIME_LAYOUT", "Jan 2, 2006 3:04 PM")
	v.SetDefault("SCAN_TIMEOUT", "60s")
	v.SetDefault("MSG_UNCONFIGURED", scanner.DefaultMessages.Unconfigured)
	v.SetDefault("MSG_CORRUPT_PAYLOAD", scanner.DefaultMessages.CorruptPayload)
	v.SetDefault("MSG_TOO_MANY_TAGS", scanner.DefaultMessages.TooManyTags)
	v.SetDefault("MSG_UNSUPPORTED_KIND", scanner.DefaultMessages.UnsupportedKind)
	v.SetDefault("MSG_CONNECTION_FAILURE", scanner.DefaultMessages.ConnectionFailure)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "checkins")
	v.SetDefault("GEO_URL", "")
	v.SetDefault("GEO_TIMEOUT", "3s")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}
	if cfg.LocationFixWait < 0 {
		return nil, errors.New("config: LOCATION_FIX_WAIT must not be negative")
	}
	if cfg.ScanTimeout < 0 {
		return nil, errors.New("config: SCAN_TIMEOUT must not be negative")
	}
	if len(cfg.KafkaBrokersList()) > 0 && strings.TrimSpace(cfg.KafkaTopic) == "" {
		return nil, errors.New("config: KAFKA_TOPIC must be set when KAFKA_BROKERS is set")
	}

	return &cfg, nil
}

// KafkaBrokersList separa KAFKA_BROKERS por comas. Vacío => publicación deshabilitada.
func (c *Config) KafkaBrokersList() []string {
	if c == nil || c.KafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ScanConfig arma la config de sesiones de scan con los mensajes configurados.
func (c *Config) ScanConfig() scanner.Config {
	msgs := scanner.DefaultMessages
	msgs.Unconfigured = c.MsgUnconfigured
	msgs.CorruptPayload = c.MsgCorruptPayload
	msgs.TooManyTags = c.MsgTooManyTags
	msgs.UnsupportedKind = c.MsgUnsupportedKind
	msgs.ConnectionFailure = c.MsgConnectionFailure

	return scanner.Config{
		Messages: msgs,
		Timeout:  c.ScanTimeout,
	}
}

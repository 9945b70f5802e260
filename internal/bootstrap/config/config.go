package config

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"goyo/internal/bootstrap/logging"
	"goyo/internal/errs"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	NATS     NATSConfig     `mapstructure:"nats"`
	Policy   PolicyConfig   `mapstructure:"policy"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// NATSConfig configures the optional alert fan-out. An empty URL disables
// publication.
type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

// PolicyConfig points to the risk/scheduling policy file; empty means
// built-in defaults.
type PolicyConfig struct {
	File string `mapstructure:"file"`
}

func Load(ctx context.Context, configFile string) (Config, error) {
	if ctx == nil {
		return Config{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Config{}, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.config"))

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			// Keep default and env-backed config when no file is provided.
			logging.Warn(logCtx, "config file not found, fallback to defaults and env")
		} else {
			return Config{}, errs.Wrap(err, "read config")
		}
	} else {
		logging.Info(logCtx, "using config file", slog.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errs.Wrap(err, "unmarshal config")
	}

	if cfg.Database.DSN == "" {
		return Config{}, errors.New("database.dsn is required")
	}

	logging.Info(
		logCtx,
		"config loaded",
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("server_addr", cfg.Server.Addr),
	)

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "goyo")
	v.SetDefault("app.env", "local")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/goyo.sqlite")
	v.SetDefault("server.addr", ":8090")
	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject", "wellbeing.alerts.created")
	v.SetDefault("policy.file", "")
}

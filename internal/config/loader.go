package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"jobboard/internal/db"
)

// Config is the full server configuration.
type Config struct {
	ListenAddr     string
	CORSOrigins    []string
	JWTSecret      string
	MigrationsPath string
	Database       db.Config
}

// DefaultConfig returns the configuration used when no config file or
// environment overrides are present.
func DefaultConfig() Config {
	return Config{
		ListenAddr:     ":8080",
		CORSOrigins:    []string{"http://localhost:3000"},
		MigrationsPath: "./migrations",
		Database:       db.DefaultConfig(),
	}
}

// Load reads config.yaml from the given path, with environment overrides
// mapped through the JOBBOARD prefix (e.g. JOBBOARD_SERVER_ADDR,
// JOBBOARD_DATABASE_HOST).
func Load(configPath string) (Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("JOBBOARD")

	// Map nested keys to flat env vars
	v.BindEnv("server.addr")
	v.BindEnv("server.cors_origins")
	v.BindEnv("auth.jwt_secret")
	v.BindEnv("migrations.path")
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Use defaults + env
		log.Info().Msg("no config.yaml found, using defaults and env vars")
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("loaded config.yaml")
	}

	if v.IsSet("server.addr") {
		cfg.ListenAddr = v.GetString("server.addr")
	}
	if v.IsSet("server.cors_origins") {
		cfg.CORSOrigins = v.GetStringSlice("server.cors_origins")
	}
	if v.IsSet("auth.jwt_secret") {
		cfg.JWTSecret = v.GetString("auth.jwt_secret")
	}
	if v.IsSet("migrations.path") {
		cfg.MigrationsPath = v.GetString("migrations.path")
	}
	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("auth.jwt_secret is required (set JOBBOARD_AUTH_JWT_SECRET)")
	}

	return cfg, nil
}

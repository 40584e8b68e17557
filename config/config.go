package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	defaultPort     = 3000
	defaultTokenTTL = 24 * time.Hour
)

type Config struct {
	Database pg.Options
	// DatabaseURL overrides Database when set.
	DatabaseURL string
	// LogQueries enables SQL query logging at debug level.
	LogQueries bool
	// Migrate applies embedded migrations on start.
	Migrate bool
	// InMemory runs against the in-memory store instead of PostgreSQL.
	InMemory bool
	App      struct {
		Host string
		Port int
	}
	Auth struct {
		Secret   string
		TokenTTL Duration
	}
}

// Duration decodes TOML strings like "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Load reads the TOML file at path and fills in defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) normalize() error {
	if c.DatabaseURL != "" {
		opt, err := pg.ParseURL(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to parse database URL: %w", err)
		}

		opt.MaxRetries = c.Database.MaxRetries
		opt.PoolSize = c.Database.PoolSize
		opt.MaxConnAge = c.Database.MaxConnAge
		c.Database = *opt
	}

	if c.App.Port == 0 {
		c.App.Port = defaultPort
	}
	if c.Auth.TokenTTL.Duration == 0 {
		c.Auth.TokenTTL.Duration = defaultTokenTTL
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth secret is required")
	}

	return nil
}

// PostgresURL returns the connection URL for tools that need database/sql, like migrations.
func (c Config) PostgresURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Addr,
		Path:     c.Database.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

package main

import (
	"os"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the seeder configuration, loadable from environment variables
// (SAUNA_ prefix), flags, or YAML config files.
type Config struct {
	DatabaseURL string `usage:"PostgreSQL connection URL (SAUNA_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	SeedFile    string `default:"db/seed/fixtures.json" usage:"Path to the seed fixtures JSON file" flag:"seed-file"`
	Concurrency int    `default:"8" usage:"Max concurrent product upserts"`
}

// LoadConfig loads configuration from environment variables, flags, and YAML
// config files, falling back to the platform DATABASE_URL variable.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "SAUNA",
		Files:     []string{"config.yaml", "/etc/sauna/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("database URL is required: set SAUNA_DATABASE_URL or DATABASE_URL")
	}

	return &cfg, nil
}

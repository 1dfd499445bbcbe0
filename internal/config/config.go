package config

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/AlenaMolokova/canadasin/internal/constants"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddr        string `env:"RUN_ADDRESS"`
	DatabaseURI    string `env:"DATABASE_URI"`
	JWTSecret      string `env:"JWT_SECRET"`
	MigrationsPath string `env:"MIGRATIONS_PATH"`
	GenerateLimit  int    `env:"GENERATE_LIMIT"`
}

func defaults() *Config {
	return &Config{
		RunAddr:        ":8080",
		JWTSecret:      constants.DefaultJWTSecret,
		MigrationsPath: "file://migrations",
		GenerateLimit:  constants.DefaultGenerateLimit,
	}
}

func NewConfig() (*Config, error) {
	return Load(flag.CommandLine, nil)
}

// Load fills defaults, then flags from args, then environment variables.
// A nil args means os.Args[1:].
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := defaults()

	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	fs.StringVar(&cfg.JWTSecret, "j", cfg.JWTSecret, "JWT secret")
	fs.StringVar(&cfg.MigrationsPath, "m", cfg.MigrationsPath, "migrations source URL")
	fs.IntVar(&cfg.GenerateLimit, "g", cfg.GenerateLimit, "max numbers per generate request")

	if args == nil {
		args = os.Args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		log.Printf("Failed to parse env: %v", err)
		return nil, err
	}

	if cfg.DatabaseURI == "" {
		log.Printf("Error: DATABASE_URI is empty")
		return nil, errors.New("DATABASE_URI is required")
	}
	if cfg.GenerateLimit <= 0 {
		cfg.GenerateLimit = constants.DefaultGenerateLimit
	}
	if cfg.JWTSecret == constants.DefaultJWTSecret {
		log.Println("JWT_SECRET not set, using default")
	}

	log.Printf("Config loaded: RunAddr=%s, MigrationsPath=%s, GenerateLimit=%d",
		cfg.RunAddr, cfg.MigrationsPath, cfg.GenerateLimit)
	return cfg, nil
}

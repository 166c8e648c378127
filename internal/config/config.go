package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything read from the environment at startup. It is
// never mutated after Load returns.
type Config struct {
	Port        int
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	CORSOrigins []string
	// RunMigrations creates the schema at boot when true. Deployments that
	// manage the schema themselves leave it off.
	RunMigrations bool
}

// Load reads the configuration from environment variables. A missing
// database variable is an error; PORT defaults to 8080.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       8080,
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_DATABASE"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	required := map[string]string{
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USERNAME": cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_DATABASE": cfg.DBName,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	cfg.RunMigrations = os.Getenv("RUN_MIGRATIONS") == "true"

	return cfg, nil
}

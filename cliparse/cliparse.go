package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	AdminPassword  string
	AdminTokenSalt string
	FrontendURL    string

	// SMTP settings for outbound notifications; an empty host disables email
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("amigo-chocolate", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.FrontendURL, "frontend-url", "", "Frontend base URL for participant links")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin panel password (prefer env)")
	fs.StringVar(&cfg.AdminTokenSalt, "admin-salt", "", "Admin token salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8233 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.FrontendURL == "" {
		cfg.FrontendURL = os.Getenv("FRONTEND_URL")
		if cfg.FrontendURL == "" {
			cfg.FrontendURL = "http://localhost:3000"
		}
	}

	// Secrets - MUST be provided
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	if cfg.AdminTokenSalt == "" {
		cfg.AdminTokenSalt = os.Getenv("ADMIN_TOKEN_SALT")
	}
	if cfg.AdminTokenSalt == "" {
		return Config{}, errors.New("ADMIN_TOKEN_SALT required")
	}

	// SMTP is optional; leave host empty to disable notifications
	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	if cfg.SMTPHost != "" {
		if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid SMTP_PORT env variable")
			}
			cfg.SMTPPort = port
		} else {
			cfg.SMTPPort = 587
		}
		cfg.SMTPUser = os.Getenv("SMTP_USER")
		cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
		cfg.SMTPFromName = os.Getenv("SMTP_FROM_NAME")
		if cfg.SMTPFromName == "" {
			cfg.SMTPFromName = "Amigo Chocolate"
		}
		cfg.SMTPFromEmail = os.Getenv("SMTP_FROM_EMAIL")
		if cfg.SMTPFromEmail == "" {
			return Config{}, errors.New("SMTP_FROM_EMAIL required when SMTP_HOST is set")
		}
	}

	return cfg, nil
}

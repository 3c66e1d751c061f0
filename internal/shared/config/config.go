package config

import (
	"log"
	"os"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	DatabaseURL     string

	// Email delivery for finished reports.
	ResendAPIKey      string
	ReportTargetEmail string
	ReportFromEmail   string

	// Optional branding assets (fonts, logo) for the PDF renderer.
	AssetsDir string

	// Directory for file-backed assessment progress blobs.
	LocalStoreDir string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		Env:               env,
		DatabaseURL:       dbURL,
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		ReportTargetEmail: os.Getenv("REPORT_TARGET_EMAIL"),
		ReportFromEmail:   getEnv("REPORT_FROM_EMAIL", "Lumos Prioritiser <onboarding@resend.dev>"),
		AssetsDir:         getEnv("ASSETS_DIR", "./assets"),
		LocalStoreDir:     getEnv("LOCAL_STORE_DIR", "./data"),
	}

	if env == "production" {
		if cfg.ResendAPIKey == "" {
			log.Printf("RESEND_API_KEY is required in production")
		}
		if cfg.ReportTargetEmail == "" {
			log.Printf("REPORT_TARGET_EMAIL is required in production")
		}
	}

	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env is the process-wide configuration. It is built once in main and
// treated as immutable afterwards.
type Env struct {
	AppAddr   string
	GinMode   string
	LogLevel  string
	LogFormat string

	// CORSOrigins empty means any origin is allowed (echoed back).
	CORSOrigins []string
}

func LoadEnv() Env {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogLevel:    strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogFormat:   strings.TrimSpace(os.Getenv("LOG_FORMAT")),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func splitOrigins(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

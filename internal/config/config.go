package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const devSecret = "supersecret-dev-key"

type Config struct {
	Mode     Mode
	HTTPAddr string
	SiteID   string

	DBDriver string
	DBDSN    string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	CORSOrigins []string

	LogJSON  bool
	LogDebug bool

	EnableMetrics  bool
	RequestTimeout time.Duration
}

// LoadDotEnv seeds the process environment from the given files (default
// ".env"). Variables already set win. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	defOrigins := "http://localhost:3000,http://localhost:5173"
	if mode == ModeOnline {
		defOrigins = "https://talentai.app"
	}
	return Config{
		Mode:           mode,
		HTTPAddr:       envOr("HTTP_ADDR", ":5000"),
		SiteID:         envOr("SITE_ID", "local"),
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DBDSN:          envOr("DB_DSN", ""),
		JWTSecret:      envOr("JWT_SECRET", devSecret),
		TokenTTL:       envDuration("TOKEN_TTL", 24*time.Hour),
		BcryptCost:     envInt("BCRYPT_COST", 10),
		CORSOrigins:    csvOr("CORS_ORIGINS", defOrigins),
		LogJSON:        envBool("LOG_JSON", mode == ModeOnline),
		LogDebug:       envBool("LOG_DEBUG", false),
		EnableMetrics:  envBool("ENABLE_METRICS", true),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
}

// Validate rejects settings that are unsafe in online mode.
func (c Config) Validate() error {
	if c.Mode != ModeOffline && c.Mode != ModeOnline {
		return errors.New("MODE must be offline or online")
	}
	if c.Mode == ModeOnline && c.JWTSecret == devSecret {
		return errors.New("JWT_SECRET must be set in online mode")
	}
	return nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return n
}
func envDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string // Site URL used for feeds, sitemap and canonical links
	Port        string
	ContentPath string
	PublicPath  string

	// Build
	BuildConcurrency int
	WatchDebounce    time.Duration

	// Observability (optional)
	SentryDSN string

	// Publishing (S3-compatible: AWS S3, MinIO, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Artem Avetisyan"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:      strings.TrimSuffix(envRequired("APP_URL"), "/"),
		Port:        envString("PORT", "8090"),
		ContentPath: envString("CONTENT_PATH", "content"),
		PublicPath:  envString("PUBLIC_PATH", "public"),

		// Build
		BuildConcurrency: envInt("BUILD_CONCURRENCY", 4),
		WatchDebounce:    envDuration("WATCH_DEBOUNCE", 300*time.Millisecond),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Publishing (only needed by "do publish")
		S3Region:    envString("S3_REGION", ""),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
	}

	err = cfg.Validate()
	if err != nil {
		slog.Error("config invalid", "error", err)
		os.Exit(1)
	}

	return cfg
}

// Validate checks values that would otherwise produce a broken site.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AppEnv, validation.Required, validation.In("development", "production")),
		validation.Field(&c.AppURL, validation.Required, is.URL),
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.ContentPath, validation.Required),
		validation.Field(&c.PublicPath, validation.Required),
		validation.Field(&c.BuildConcurrency, validation.Required, validation.Min(1)),
	)
}

// PostsPath is the content store directory holding one file per post.
func (c *Config) PostsPath() string {
	return filepath.Join(c.ContentPath, "posts")
}

// PagesPath holds standalone Markdown pages such as about.md.
func (c *Config) PagesPath() string {
	return filepath.Join(c.ContentPath, "pages")
}

// StaticPath holds files copied verbatim to the site root (favicon, images).
func (c *Config) StaticPath() string {
	return filepath.Join(c.ContentPath, "static")
}

// HasS3 reports whether publishing to a bucket is configured.
func (c *Config) HasS3() bool {
	return c.S3Region != "" && c.S3Bucket != ""
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx, templates and client-facing contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,
	}
}

package ctxkeys

import (
	"context"

	"github.com/templui/folio/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	URLPathKey contextKey = "url_path"
	ConfigKey  contextKey = "config"
)

func URLPath(ctx context.Context) string {
	path, _ := ctx.Value(URLPathKey).(string)
	return path
}

func WithURLPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, URLPathKey, path)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

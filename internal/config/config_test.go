package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		AppEnv:           "development",
		AppURL:           "https://artem.rocks",
		Port:             "8090",
		ContentPath:      "content",
		PublicPath:       "public",
		BuildConcurrency: 4,
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("unknown env", func(t *testing.T) {
		cfg := validConfig()
		cfg.AppEnv = "staging"
		assert.Error(t, cfg.Validate())
	})

	t.Run("site url must be a URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.AppURL = "not a url"
		assert.Error(t, cfg.Validate())
	})

	t.Run("concurrency at least one", func(t *testing.T) {
		cfg := validConfig()
		cfg.BuildConcurrency = 0
		assert.Error(t, cfg.Validate())

		cfg.BuildConcurrency = -2
		assert.Error(t, cfg.Validate())

		cfg.BuildConcurrency = 1
		assert.NoError(t, cfg.Validate())
	})
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("FOLIO_TEST_INT", "12")
	t.Setenv("FOLIO_TEST_BAD_INT", "twelve")
	t.Setenv("FOLIO_TEST_DURATION", "2s")

	assert.Equal(t, 12, envInt("FOLIO_TEST_INT", 1))
	assert.Equal(t, 1, envInt("FOLIO_TEST_BAD_INT", 1))
	assert.Equal(t, 2*time.Second, envDuration("FOLIO_TEST_DURATION", time.Second))
	assert.Equal(t, "fallback", envString("FOLIO_TEST_UNSET", "fallback"))
}

func TestPaths(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, filepath.Join("content", "posts"), cfg.PostsPath())
	assert.Equal(t, filepath.Join("content", "pages"), cfg.PagesPath())
	assert.Equal(t, filepath.Join("content", "static"), cfg.StaticPath())
	assert.False(t, cfg.HasS3())

	cfg.S3Region, cfg.S3Bucket = "eu-west-1", "artem-rocks"
	assert.True(t, cfg.HasS3())
}

func TestSanitizedDropsCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.S3SecretKey = "secret"
	cfg.SentryDSN = "https://key@sentry.example/1"

	safe := cfg.Sanitized()
	assert.Empty(t, safe.S3SecretKey)
	assert.Empty(t, safe.SentryDSN)
	assert.Equal(t, cfg.AppURL, safe.AppURL)
}

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshisharma25/meetyfi-b/config"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults around the required variables", func(t *testing.T) {
		t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
		t.Setenv("SECRET_KEY", "test-secret")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, config.DefaultProjectName, cfg.ProjectName)
		assert.Equal(t, config.DefaultHTTPAddr, cfg.HTTPAddr)
		assert.Equal(t, config.DefaultMongoDBName, cfg.MongoDBName)
		assert.Equal(t, config.DefaultTokenExpire, cfg.TokenTTL)
		assert.Equal(t, config.DefaultCORSOrigins, cfg.CORSOrigins)
		assert.Equal(t, config.DefaultShutdownTimeout, cfg.ShutdownTimeout)
	})

	t.Run("honors overrides", func(t *testing.T) {
		t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
		t.Setenv("SECRET_KEY", "test-secret")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")
		t.Setenv("SHUTDOWN_TIMEOUT", "30s")
		t.Setenv("HTTP_ADDR", ":9000")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 45*time.Minute, cfg.TokenTTL)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, ":9000", cfg.HTTPAddr)
	})

	t.Run("requires the mongo url", func(t *testing.T) {
		t.Setenv("MONGODB_URL", "")
		t.Setenv("SECRET_KEY", "test-secret")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("requires the signing key", func(t *testing.T) {
		t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
		t.Setenv("SECRET_KEY", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("malformed numeric overrides fall back to defaults", func(t *testing.T) {
		t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
		t.Setenv("SECRET_KEY", "test-secret")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")
		t.Setenv("SHUTDOWN_TIMEOUT", "whenever")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, config.DefaultTokenExpire, cfg.TokenTTL)
		assert.Equal(t, config.DefaultShutdownTimeout, cfg.ShutdownTimeout)
	})
}

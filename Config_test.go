package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, DefaultListenAddr, config.ListenAddr)
		assert.Equal(t, DefaultDatabaseFilepath, config.DatabaseFilepath)
		assert.Equal(t, int64(DefaultMaxUploadBytes), config.MaxUploadBytes)
		assert.Empty(t, config.SendGridApiKey)
		assert.Empty(t, config.EmailFrom)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LISTEN_ADDR", ":9090")
		t.Setenv("DATABASE_FILEPATH", "/tmp/other.db")
		t.Setenv("SENDGRID_API_KEY", "SG.key")
		t.Setenv("EMAIL_FROM", "noreply@example.com")
		t.Setenv("MAX_UPLOAD_BYTES", "1024")

		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, ":9090", config.ListenAddr)
		assert.Equal(t, "/tmp/other.db", config.DatabaseFilepath)
		assert.Equal(t, "SG.key", config.SendGridApiKey)
		assert.Equal(t, "noreply@example.com", config.EmailFrom)
		assert.Equal(t, int64(1024), config.MaxUploadBytes)
	})

	t.Run("yaml file layer", func(t *testing.T) {
		f, err := os.CreateTemp("", "config_*.yaml")
		assert.NoError(t, err)
		defer os.Remove(f.Name())

		content := "listen_addr: \":7070\"\nmax_upload_bytes: 2048\nemail_from: file@example.com\n"
		_, err = f.WriteString(content)
		assert.NoError(t, err)
		assert.NoError(t, f.Close())

		t.Setenv("CONFIG_FILEPATH", f.Name())

		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, ":7070", config.ListenAddr)
		assert.Equal(t, int64(2048), config.MaxUploadBytes)
		assert.Equal(t, "file@example.com", config.EmailFrom)
		// untouched keys keep their defaults
		assert.Equal(t, DefaultDatabaseFilepath, config.DatabaseFilepath)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		f, err := os.CreateTemp("", "config_*.yaml")
		assert.NoError(t, err)
		defer os.Remove(f.Name())

		_, err = f.WriteString("listen_addr: \":7070\"\n")
		assert.NoError(t, err)
		assert.NoError(t, f.Close())

		t.Setenv("CONFIG_FILEPATH", f.Name())
		t.Setenv("LISTEN_ADDR", ":9090")

		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, ":9090", config.ListenAddr)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("CONFIG_FILEPATH", "/nonexistent/config.yaml")

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("broken yaml", func(t *testing.T) {
		f, err := os.CreateTemp("", "config_*.yaml")
		assert.NoError(t, err)
		defer os.Remove(f.Name())

		_, err = f.WriteString("listen_addr: [broken")
		assert.NoError(t, err)
		assert.NoError(t, f.Close())

		t.Setenv("CONFIG_FILEPATH", f.Name())

		_, err = LoadConfig()

		assert.Error(t, err)
	})

	t.Run("invalid max upload bytes", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

		_, err := LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MAX_UPLOAD_BYTES")
	})
}

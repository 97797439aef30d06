package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DB_DRIVER", "DB_DSN", "SQLITE_PATH",
		"BLOB_DRIVER", "BLOB_S3_BUCKET", "NOTIFY_DRIVER", "NOTIFY_FROM",
		"NOTIFY_TIMEOUT", "NOTIFY_WEBHOOK_URL", "SMTP_HOST", "SMTP_PORT",
		"STATUS_GAUGE_CRON",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Equal(t, "memory", cfg.BlobDriver)
	assert.Equal(t, "memory", cfg.NotifyDriver)
	assert.Empty(t, cfg.NotifyFrom)
	assert.Equal(t, DefaultNotifyTimeout, cfg.NotifyTimeout)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoad_DSNImpliesPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/rescue")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTIFY_DRIVER", "SMTP")
	t.Setenv("SMTP_HOST", "smtp.example.org")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("NOTIFY_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "smtp", cfg.NotifyDriver)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, 3*time.Second, cfg.NotifyTimeout)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown db driver":    {"DB_DRIVER": "mongo"},
		"postgres without dsn": {"DB_DRIVER": "postgres"},
		"s3 without bucket":    {"BLOB_DRIVER": "s3"},
		"smtp without host":    {"NOTIFY_DRIVER": "smtp"},
		"webhook without url":  {"NOTIFY_DRIVER": "webhook"},
		"bad smtp port":        {"SMTP_PORT": "abc"},
		"bad notify timeout":   {"NOTIFY_TIMEOUT": "soon"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

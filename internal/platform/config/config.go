package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8080"
	DefaultNotifyTimeout   = 10 * time.Second
	DefaultStatusGaugeCron = "@every 1m"
)

// Config agrupa todo lo que cmd/api necesita para armar el servidor.
type Config struct {
	Port string

	DBDriver   string // memory | postgres | sqlite
	DBDSN      string
	SQLitePath string

	BlobDriver      string // memory | s3
	BlobS3Bucket    string
	BlobS3Region    string
	BlobS3Endpoint  string
	BlobS3PathStyle bool

	NotifyDriver       string // memory | smtp | webhook
	NotifyFrom         string // vacío => lifecycle.DefaultSender
	NotifyTimeout      time.Duration
	NotifyWebhookURL   string
	NotifyWebhookToken string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	StatusGaugeCron string
}

// Load lee variables de entorno. Si existe un .env lo carga primero
// (godotenv no pisa variables ya definidas).
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:               getenv("PORT", DefaultPort),
		DBDriver:           strings.ToLower(getenv("DB_DRIVER", "")),
		DBDSN:              os.Getenv("DB_DSN"),
		SQLitePath:         getenv("SQLITE_PATH", "animal-rescue.db"),
		BlobDriver:         strings.ToLower(getenv("BLOB_DRIVER", "memory")),
		BlobS3Bucket:       os.Getenv("BLOB_S3_BUCKET"),
		BlobS3Region:       os.Getenv("BLOB_S3_REGION"),
		BlobS3Endpoint:     os.Getenv("BLOB_S3_ENDPOINT"),
		BlobS3PathStyle:    strings.EqualFold(os.Getenv("BLOB_S3_PATH_STYLE"), "true"),
		NotifyDriver:       strings.ToLower(getenv("NOTIFY_DRIVER", "memory")),
		NotifyFrom:         os.Getenv("NOTIFY_FROM"),
		NotifyTimeout:      DefaultNotifyTimeout,
		NotifyWebhookURL:   os.Getenv("NOTIFY_WEBHOOK_URL"),
		NotifyWebhookToken: os.Getenv("NOTIFY_WEBHOOK_TOKEN"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           587,
		SMTPUsername:       os.Getenv("SMTP_USERNAME"),
		SMTPPassword:       os.Getenv("SMTP_PASSWORD"),
		StatusGaugeCron:    getenv("STATUS_GAUGE_CRON", DefaultStatusGaugeCron),
	}

	// Compat: si hay DSN y no se eligió driver, asumimos postgres.
	if cfg.DBDriver == "" {
		if cfg.DBDSN != "" {
			cfg.DBDriver = "postgres"
		} else {
			cfg.DBDriver = "memory"
		}
	}

	if v := strings.TrimSpace(os.Getenv("SMTP_PORT")); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = p
	}

	if v := strings.TrimSpace(os.Getenv("NOTIFY_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTIFY_TIMEOUT: %w", err)
		}
		cfg.NotifyTimeout = d
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DBDriver {
	case "memory", "sqlite":
	case "postgres":
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required for DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}

	switch c.BlobDriver {
	case "memory":
	case "s3":
		if c.BlobS3Bucket == "" {
			return fmt.Errorf("BLOB_S3_BUCKET is required for BLOB_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unknown BLOB_DRIVER %q", c.BlobDriver)
	}

	switch c.NotifyDriver {
	case "memory":
	case "smtp":
		if c.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required for NOTIFY_DRIVER=smtp")
		}
	case "webhook":
		if c.NotifyWebhookURL == "" {
			return fmt.Errorf("NOTIFY_WEBHOOK_URL is required for NOTIFY_DRIVER=webhook")
		}
	default:
		return fmt.Errorf("unknown NOTIFY_DRIVER %q", c.NotifyDriver)
	}
	return nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

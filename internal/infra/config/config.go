// internal/infra/config/config.go
package config

import (
	"os"
	"strings"
)

// Config holds environment-backed settings for the whole application.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	GCPCreds                 string // GOOGLE_APPLICATION_CREDENTIALS

	// CORS origin of the storefront frontend ("*" for local dev).
	AllowedOrigin string

	// Optional Postgres DSN; when set, placed orders are mirrored there.
	OrdersArchiveDSN string

	// SendGrid: either the key itself or a Secret Manager secret id.
	SendGridAPIKey       string
	SendGridAPIKeySecret string
	OrderEmailFrom       string
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       resolveProjectID(),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),

		OrdersArchiveDSN: os.Getenv("ORDERS_ARCHIVE_DSN"),

		SendGridAPIKey:       os.Getenv("SENDGRID_API_KEY"),
		SendGridAPIKeySecret: os.Getenv("SENDGRID_API_KEY_SECRET"),
		OrderEmailFrom:       os.Getenv("ORDER_EMAIL_FROM"),
	}
}

// resolveProjectID picks the GCP project id from the usual suspects.
// Cloud Run sets GOOGLE_CLOUD_PROJECT.
func resolveProjectID() string {
	for _, k := range []string{
		"FIRESTORE_PROJECT_ID",
		"GCP_PROJECT_ID",
		"GOOGLE_CLOUD_PROJECT",
		"FIREBASE_PROJECT_ID",
	} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

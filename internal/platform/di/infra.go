// internal/platform/di/infra.go
package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	pgdb "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/out/db"
	"github.com/MhmdMaazin/ecommerce-platform/internal/adapters/out/secrets"
	appcfg "github.com/MhmdMaazin/ecommerce-platform/internal/infra/config"
)

// Infra owns the external clients shared by the whole application.
// Firestore is strict (boot fails without it); Firebase Auth, Secret Manager,
// GCS and Postgres are best-effort (warn + the dependent feature degrades).
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	Firestore     *firestore.Client
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client
	GCS           *storage.Client
	ArchiveDB     *sql.DB
}

func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()

	projectID := strings.TrimSpace(cfg.FirestoreProjectID)
	if projectID == "" {
		return nil, errors.New("di.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GOOGLE_CLOUD_PROJECT)")
	}

	inf := &Infra{
		Config:    cfg,
		ProjectID: projectID,
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di.infra] using credentials file for GCP clients")
	} else {
		log.Printf("[di.infra] using Application Default Credentials")
	}

	// Firestore (strict)
	{
		fsClient, err := firestore.NewClient(ctx, projectID, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("di.infra: firestore.NewClient failed (project=%s): %w", projectID, err)
		}
		inf.Firestore = fsClient
		log.Printf("[di.infra] Firestore connected project=%s", projectID)
	}

	// Firebase Auth (best-effort; without it authenticated routes 503)
	{
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: firebase app init failed: %v", err)
		} else if authClient, err := app.Auth(ctx); err != nil {
			log.Printf("[di.infra] WARN: firebase auth init failed: %v", err)
		} else {
			inf.FirebaseAuth = authClient
			log.Printf("[di.infra] Firebase Auth initialized")
		}
	}

	// Secret Manager (best-effort; only needed to resolve the SendGrid key)
	{
		sm, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: secretmanager.NewClient failed: %v", err)
			sm = nil
		}
		inf.SecretManager = sm
	}

	// GCS (best-effort; without it gs:// image refs are served as stored)
	{
		gcs, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: storage.NewClient failed: %v", err)
			gcs = nil
		}
		inf.GCS = gcs
	}

	// Postgres order archive (only when configured)
	if dsn := strings.TrimSpace(cfg.OrdersArchiveDSN); dsn != "" {
		conn, err := pgdb.NewConnection(dsn)
		if err != nil {
			log.Printf("[di.infra] WARN: order archive db unavailable: %v", err)
		} else {
			inf.ArchiveDB = conn
		}
	}

	return inf, nil
}

// ResolveSendGridKey returns the SendGrid API key from the environment, or
// from Secret Manager when only a secret id is configured. Empty result means
// confirmation mail is disabled.
func (i *Infra) ResolveSendGridKey(ctx context.Context) string {
	if i == nil || i.Config == nil {
		return ""
	}
	if key := strings.TrimSpace(i.Config.SendGridAPIKey); key != "" {
		return key
	}

	secretID := strings.TrimSpace(i.Config.SendGridAPIKeySecret)
	if secretID == "" {
		return ""
	}
	if i.SecretManager == nil {
		log.Printf("[di.infra] WARN: SENDGRID_API_KEY_SECRET set but Secret Manager is unavailable")
		return ""
	}

	provider := secrets.NewAPIKeyProviderSM(i.SecretManager, i.ProjectID)
	key, err := provider.Get(ctx, secretID)
	if err != nil {
		log.Printf("[di.infra] WARN: sendgrid key lookup failed: %v", err)
		return ""
	}
	return key
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close()
	}
	if i.SecretManager != nil {
		_ = i.SecretManager.Close()
	}
	if i.GCS != nil {
		_ = i.GCS.Close()
	}
	if i.ArchiveDB != nil {
		_ = i.ArchiveDB.Close()
	}
	return nil
}

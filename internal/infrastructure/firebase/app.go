package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"gighub/pkg/config"
	"gighub/pkg/logger"
)

// App wraps the Firebase admin app and the clients built from it.
type App struct {
	app       *fbapp.App
	Firestore *firestore.Client
	bucket    string
}

// ClientOptions picks credentials from the inline JSON, then the file path,
// then application default credentials.
func ClientOptions(cfg *config.Config) []option.ClientOption {
	switch {
	case cfg.ServiceAccountJSON != "":
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))}
	case cfg.ServiceAccountPath != "":
		logger.Info("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.ServiceAccountPath)}
	default:
		logger.Info("Using application default credentials")
		return nil
	}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     cfg.FirebaseProject,
		StorageBucket: cfg.StorageBucket,
	}, ClientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &App{app: app, Firestore: client, bucket: cfg.StorageBucket}, nil
}

// Bucket returns the configured storage bucket, or nil when none is set.
func (a *App) Bucket(ctx context.Context) (*gcs.BucketHandle, error) {
	if a.bucket == "" {
		return nil, nil
	}

	client, err := a.app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloud Storage: %w", err)
	}

	return client.Bucket(a.bucket)
}

func (a *App) BucketName() string {
	return a.bucket
}

func (a *App) Close() error {
	return a.Firestore.Close()
}

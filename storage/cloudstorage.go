package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/myjobmatch/jobfeed/config"
)

// ArchiveClient writes JSON snapshots of responses to a Cloud Storage bucket
type ArchiveClient struct {
	client     *storage.Client
	bucketName string
}

// NewArchiveClient creates a client for cfg.ResultsBucket
func NewArchiveClient(ctx context.Context, cfg *config.Config) (*ArchiveClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &ArchiveClient{
		client:     client,
		bucketName: cfg.ResultsBucket,
	}, nil
}

// Close closes the Cloud Storage client
func (a *ArchiveClient) Close() error {
	return a.client.Close()
}

// ObjectName builds the object path for a snapshot taken at t.
func ObjectName(kind string, t time.Time, id string) string {
	return fmt.Sprintf("%s/%s/%s.json", kind, t.UTC().Format("2006-01-02"), id)
}

// Archive stores payload as JSON under kind/<date>/<uuid>.json and returns
// the gs:// URI of the new object.
func (a *ArchiveClient) Archive(ctx context.Context, kind string, payload interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	objectName := ObjectName(kind, time.Now(), uuid.NewString())

	wc := a.client.Bucket(a.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = "application/json"

	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", a.bucketName, objectName), nil
}

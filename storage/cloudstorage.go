package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const objectPrefix = "resumes"

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client. An empty
// credentialsFile uses application default credentials.
func NewCloudStorageClient(ctx context.Context, bucketName, credentialsFile string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// Save uploads resume content and returns its gs:// URI.
func (c *CloudStorageClient) Save(ctx context.Context, filename string, content []byte) (string, error) {
	name := objectName(filename, time.Now())

	wc := c.client.Bucket(c.bucketName).Object(name).NewWriter(ctx)
	wc.ContentType = getContentType(filepath.Ext(filename))
	wc.Metadata = map[string]string{"original_filename": safeBase(filename)}

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return c.uri(name), nil
}

func (c *CloudStorageClient) uri(name string) string {
	return fmt.Sprintf("gs://%s/%s", c.bucketName, name)
}

// objectName files uploads by day with a random name keeping the extension.
func objectName(filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(safeBase(filename)))
	return fmt.Sprintf("%s/%s/%s%s", objectPrefix, now.UTC().Format("2006/01/02"), uuid.NewString(), ext)
}

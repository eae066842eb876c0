package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/jumptake/backend/config"
)

const resumePrefix = "resumes"

// CloudStorageClient archives original resume uploads in a Cloud Storage
// bucket. It implements resume.Archiver.
type CloudStorageClient struct {
	client *storage.Client
	bucket string
	now    func() time.Time
}

func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	if cfg.CVBucketName == "" {
		return nil, &config.ConfigError{Field: "CV_BUCKET_NAME", Message: "CV_BUCKET_NAME is required to archive resumes"}
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{client: client, bucket: cfg.CVBucketName, now: time.Now}, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// ArchiveResume uploads content under a generated object name and returns
// its public URL. The client's file name is kept as metadata only.
func (c *CloudStorageClient) ArchiveResume(ctx context.Context, filename, contentType string, content []byte) (string, error) {
	name := resumeObjectName(filename, c.now())

	// Cancelling the context aborts a partial upload.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := c.client.Bucket(c.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if w.ContentType == "" {
		w.ContentType = contentTypeFor(filename)
	}
	w.Metadata = map[string]string{"original-filename": filepath.Base(filename)}

	if _, err := io.Copy(w, bytes.NewReader(content)); err != nil {
		cancel()
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", name, err)
	}

	return objectURL(c.bucket, name), nil
}

// resumeObjectName builds resumes/<yyyy>/<mm>/<uuid><ext>.
func resumeObjectName(filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(resumePrefix, now.UTC().Format("2006/01"), uuid.NewString()+ext)
}

func objectURL(bucket, name string) string {
	u := url.URL{Scheme: "https", Host: "storage.googleapis.com", Path: "/" + bucket + "/" + name}
	return u.String()
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

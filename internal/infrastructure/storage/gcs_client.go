package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

const publicURLPrefix = "https://storage.googleapis.com/"

// CloudStorageClient writes public objects into a single bucket.
type CloudStorageClient struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewCloudStorageClient(bucket *storage.BucketHandle, bucketName string) *CloudStorageClient {
	return &CloudStorageClient{
		bucket:     bucket,
		bucketName: bucketName,
	}
}

func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	filename := ObjectName(folder, contentType, time.Now())

	obj := c.bucket.Object(filename)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return PublicURL(c.bucketName, filename), nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	objectName, err := ObjectFromURL(c.bucketName, fileURL)
	if err != nil {
		return err
	}

	if err := c.bucket.Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

// ObjectName builds "<folder>/<uuid>-<timestamp><ext>".
func ObjectName(folder, contentType string, at time.Time) string {
	folder = strings.Trim(folder, "/")
	return fmt.Sprintf("%s/%s-%s%s", folder, uuid.New().String(), at.Format("20060102150405"), extensionFor(contentType))
}

func PublicURL(bucketName, objectName string) string {
	return publicURLPrefix + bucketName + "/" + objectName
}

// ObjectFromURL is the inverse of PublicURL.
func ObjectFromURL(bucketName, fileURL string) (string, error) {
	if !strings.HasPrefix(fileURL, publicURLPrefix) {
		return "", fmt.Errorf("invalid GCS URL format")
	}

	parts := strings.SplitN(fileURL[len(publicURLPrefix):], "/", 2)
	if len(parts) != 2 || parts[0] != bucketName || parts[1] == "" {
		return "", fmt.Errorf("invalid GCS URL format or bucket mismatch")
	}

	return parts[1], nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

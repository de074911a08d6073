package storage

import "context"

// ObjectStorage captures the single S3-compatible operation the exporter
// needs: an atomic whole-object PUT. The destination bucket must already
// exist; the exporter never creates or configures buckets.
type ObjectStorage interface {
	UploadObject(ctx context.Context, key string, data []byte, contentType string) error
}

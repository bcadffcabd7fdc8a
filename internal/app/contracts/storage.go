package contracts

import (
	"context"
	"io"
)

type ObjectStorage interface {
	Upload(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error
	Download(ctx context.Context, objectName string) (io.ReadCloser, error)
}

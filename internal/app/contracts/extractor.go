package contracts

import (
	"context"
	"io"
)

// TextExtractor pulls analyzable text out of an uploaded report file.
// Real OCR lives behind this boundary; the worker only sees text.
type TextExtractor interface {
	Extract(ctx context.Context, mimeType string, reader io.Reader) (string, error)
}

package reports

import (
	"carexpert-service/internal/app/contracts"
	"context"
	"fmt"
	"io"
)

// PlainTextExtractor is the default extraction collaborator. It only handles
// plain text; PDF and image formats need an OCR-capable implementation
// plugged in behind the same interface.
type PlainTextExtractor struct{}

func NewPlainTextExtractor() contracts.TextExtractor {
	return &PlainTextExtractor{}
}

func (e *PlainTextExtractor) Extract(ctx context.Context, mimeType string, reader io.Reader) (string, error) {
	switch mimeType {
	case "text/plain":
		data, err := io.ReadAll(reader)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("no text extractor registered for %s", mimeType)
	}
}

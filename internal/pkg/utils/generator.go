package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateObjectName builds a collision-free object key for uploaded files:
// reports/<patientID>/<uuid><ext>.
func GenerateObjectName(patientID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("reports/%s/%s%s", patientID, uuid.NewString(), ext)
}

// GenerateRequestID returns a unique identifier carried through the request context.
func GenerateRequestID() string {
	return uuid.NewString()
}

// FormatSlotRange renders a slot interval for notification messages.
func FormatSlotRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("2006-01-02 15:04"), end.Format("15:04"))
}

// Package photo handles the image attachments carried by reports as data
// URLs.
package photo

import (
	"context"
	"io"
)

// Store is where ExportReports writes decoded report photos.
type Store interface {
	// Save writes the image under name plus an extension derived from
	// mimeType, replacing any previous file, and returns its storage key.
	Save(ctx context.Context, name, mimeType string, r io.Reader) (storageKey string, err error)
}

// ExtForMIME maps an image MIME type to a file extension, defaulting to JPEG.
func ExtForMIME(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

package imagegen

import (
	"path/filepath"
	"strings"
)

// mimeTypeForPath infers a MIME type from the file extension alone;
// file contents are never sniffed.
func mimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

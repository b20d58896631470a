package constants

import (
	"path/filepath"
	"strings"
)

// File type codes stored alongside uploaded media rows.
const (
	FileTypeImage    = 1
	FileTypeVideo    = 2
	FileTypeDocument = 3
	FileTypeUnknown  = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypeImage
	case ".mp4", ".webm":
		return FileTypeVideo
	case ".pdf", ".doc", ".docx":
		return FileTypeDocument
	default:
		return FileTypeUnknown
	}
}

// IsImageExt reports whether the extension is accepted by the vehicle
// media pipeline (everything we can decode and re-encode as WebP).
func IsImageExt(filename string) bool {
	return DetectFileTypeFromExt(filename) == FileTypeImage
}

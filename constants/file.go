package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ProcessingJob.
var FileTypes = []string{"PDF", "TXT"}

const (
	PDF = "PDF"
	TXT = "TXT"
)

// AllowedExtensions holds the default allowed file extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a job format, or "" if unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "txt":
		return TXT
	default:
		return ""
	}
}

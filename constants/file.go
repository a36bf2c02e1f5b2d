package constants

import "strings"

// ContentTypes holds the allowed content types for the documents intake.
var ContentTypes = []string{"PDF", "IMAGE", "HTML"}

// AllowedExtensions holds the default allowed file extensions for document intake.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tiff": {},
	"html": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ContentTypeForExt maps a normalized extension to an intake content type.
// Unknown extensions default to PDF handling upstream of validation.
func ContentTypeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "jpg", "jpeg", "png", "tiff":
		return "IMAGE"
	case "html", "htm":
		return "HTML"
	}
	return ""
}

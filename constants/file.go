package constants

import "strings"

// SourceType is the document source format stored on documents.source_type.
type SourceType string

const (
	SourcePDF   SourceType = "pdf"
	SourceImage SourceType = "image"
	SourceWord  SourceType = "word"
	SourceOther SourceType = "other"
)

// SourceTypes holds the allowed source_type values for schema validation.
var SourceTypes = []string{
	string(SourcePDF),
	string(SourceImage),
	string(SourceWord),
	string(SourceOther),
}

// AllowedExtensions holds the default allowed file extensions for uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
	"doc":  {},
	"docx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToSource maps a normalized extension to a source type.
// Unknown extensions map to SourceOther.
func MapExtToSource(ext string) SourceType {
	switch NormalizeExt(ext) {
	case "pdf":
		return SourcePDF
	case "jpg", "jpeg", "png", "tif", "tiff":
		return SourceImage
	case "doc", "docx":
		return SourceWord
	default:
		return SourceOther
	}
}

package constants

import "strings"

// Format is the coarse document family an upload belongs to.
type Format string

const (
	PDF   Format = "PDF"
	DOCX  Format = "DOCX"
	IMAGE Format = "IMAGE"
	XLSX  Format = "XLSX"
	TEXT  Format = "TEXT"
)

// Declared MIME types the extraction cascade branches on.
const (
	MIMEPDF   = "application/pdf"
	MIMEDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEXLSX  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEJPEG  = "image/jpeg"
	MIMEJPG   = "image/jpg"
	MIMEPNG   = "image/png"
	MIMEPlain = "text/plain"
)

// AllowedUploadTypes holds the MIME types accepted on the upload endpoint.
var AllowedUploadTypes = map[string]struct{}{
	MIMEPDF:   {},
	MIMEDOCX:  {},
	MIMEXLSX:  {},
	MIMEJPEG:  {},
	MIMEJPG:   {},
	MIMEPNG:   {},
	MIMEPlain: {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// NormalizeMIME lowercases a declared content type and drops parameters
// such as "; charset=utf-8".
func NormalizeMIME(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// MapMIMEToFormat classifies a declared MIME type. Unknown types are TEXT.
func MapMIMEToFormat(mimeType string) Format {
	switch NormalizeMIME(mimeType) {
	case MIMEPDF:
		return PDF
	case MIMEDOCX:
		return DOCX
	case MIMEXLSX:
		return XLSX
	case MIMEJPEG, MIMEJPG, MIMEPNG:
		return IMAGE
	default:
		return TEXT
	}
}

// MIMEFromExt guesses a declared MIME type from a file extension, for callers
// (like the CLI) that only have a path.
func MIMEFromExt(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return MIMEPDF
	case "docx":
		return MIMEDOCX
	case "xlsx":
		return MIMEXLSX
	case "jpg", "jpeg":
		return MIMEJPEG
	case "png":
		return MIMEPNG
	default:
		return MIMEPlain
	}
}

// IsAllowedUpload reports whether the declared type is accepted for upload.
func IsAllowedUpload(mimeType string) bool {
	_, ok := AllowedUploadTypes[NormalizeMIME(mimeType)]
	return ok
}

package constants

import (
	"path/filepath"
	"strings"
)

// Attachment kinds
const (
	AttachmentKindPhoto    = "photo"
	AttachmentKindDocument = "document"
)

var imageExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".webp": {}, ".gif": {},
}

var documentExts = map[string]struct{}{
	".doc": {}, ".docx": {}, ".pdf": {}, ".odt": {}, ".rtf": {}, ".txt": {}, ".md": {},
}

var documentMimes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.oasis.opendocument.text":                                 {},
	"application/rtf": {},
	"text/plain":      {},
	"text/markdown":   {},
}

// DetectAttachmentKindContent infers the kind from a sniffed content type,
// falling back to the filename extension when the sniff is inconclusive
// (docx sniffs as application/zip, many uploads as octet-stream).
func DetectAttachmentKindContent(contentType, filename string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if strings.HasPrefix(ct, "image/") {
		return AttachmentKindPhoto
	}
	if _, ok := documentMimes[ct]; ok {
		return AttachmentKindDocument
	}
	return DetectAttachmentKind(filename)
}

// DetectAttachmentKind maps a filename to an attachment kind ("" if unsupported).
func DetectAttachmentKind(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := imageExts[ext]; ok {
		return AttachmentKindPhoto
	}
	if _, ok := documentExts[ext]; ok {
		return AttachmentKindDocument
	}
	return ""
}

// IsWordDocument reports whether the filename looks like a Word document.
func IsWordDocument(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".docx" || ext == ".doc"
}

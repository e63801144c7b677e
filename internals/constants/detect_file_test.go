package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectAttachmentKind(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"cover.JPG", AttachmentKindPhoto},
		{"diagram.webp", AttachmentKindPhoto},
		{"manuscript.docx", AttachmentKindDocument},
		{"notes.md", AttachmentKindDocument},
		{"archive.tar.gz", ""},
		{"noextension", ""},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, DetectAttachmentKind(tc.filename), "filename %q", tc.filename)
	}
}

func TestDetectAttachmentKindContent(t *testing.T) {
	cases := []struct {
		contentType string
		filename    string
		want        string
	}{
		// sniffed mime wins, whatever the filename says
		{"image/png", "upload.bin", AttachmentKindPhoto},
		{"image/jpeg", "photo", AttachmentKindPhoto},
		{"application/pdf", "paper", AttachmentKindDocument},
		{"text/plain; charset=utf-8", "notes", AttachmentKindDocument},
		// docx sniffs as zip; the extension resolves it
		{"application/zip", "manuscript.docx", AttachmentKindDocument},
		{"application/octet-stream", "cover.jpg", AttachmentKindPhoto},
		// inconclusive sniff and unknown extension
		{"application/octet-stream", "blob.bin", ""},
		{"application/zip", "archive.zip", ""},
	}
	for _, tc := range cases {
		got := DetectAttachmentKindContent(tc.contentType, tc.filename)
		assert.Equalf(t, tc.want, got, "contentType %q filename %q", tc.contentType, tc.filename)
	}
}

func TestIsWordDocument(t *testing.T) {
	assert.True(t, IsWordDocument("draft.docx"))
	assert.True(t, IsWordDocument("legacy.DOC"))
	assert.False(t, IsWordDocument("draft.pdf"))
}

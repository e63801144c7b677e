package service

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const docxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const docxFooter = `</w:body></w:document>`

func TestConvertDocxToMarkdownHeadingsAndBody(t *testing.T) {
	doc := buildDocx(t, docxHeader+
		`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Title</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Plain paragraph.</w:t></w:r></w:p>`+
		`<w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t>Section</w:t></w:r></w:p>`+
		docxFooter)

	md, err := ConvertDocxToMarkdown(doc)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nPlain paragraph.\n\n## Section", md)
}

func TestConvertDocxToMarkdownBoldItalic(t *testing.T) {
	doc := buildDocx(t, docxHeader+
		`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>bold</w:t></w:r>`+
		`<w:r><w:t> and </w:t></w:r>`+
		`<w:r><w:rPr><w:i/></w:rPr><w:t>italic</w:t></w:r>`+
		`<w:r><w:rPr><w:b/><w:i/></w:rPr><w:t>both</w:t></w:r></w:p>`+
		docxFooter)

	md, err := ConvertDocxToMarkdown(doc)
	require.NoError(t, err)
	assert.Equal(t, "**bold** and *italic****both***", md)
}

func TestConvertDocxToMarkdownBoldToggleOff(t *testing.T) {
	doc := buildDocx(t, docxHeader+
		`<w:p><w:r><w:rPr><w:b w:val="false"/></w:rPr><w:t>not bold</w:t></w:r></w:p>`+
		docxFooter)

	md, err := ConvertDocxToMarkdown(doc)
	require.NoError(t, err)
	assert.Equal(t, "not bold", md)
}

func TestConvertDocxToMarkdownLists(t *testing.T) {
	doc := buildDocx(t, docxHeader+
		`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr><w:r><w:t>first</w:t></w:r></w:p>`+
		`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr><w:r><w:t>second</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>after</w:t></w:r></w:p>`+
		docxFooter)

	md, err := ConvertDocxToMarkdown(doc)
	require.NoError(t, err)
	assert.Equal(t, "- first\n- second\n\nafter", md)
}

func TestConvertDocxToMarkdownSkipsTables(t *testing.T) {
	doc := buildDocx(t, docxHeader+
		`<w:p><w:r><w:t>before</w:t></w:r></w:p>`+
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`+
		`<w:p><w:r><w:t>after</w:t></w:r></w:p>`+
		docxFooter)

	md, err := ConvertDocxToMarkdown(doc)
	require.NoError(t, err)
	assert.Equal(t, "before\n\nafter", md)
	assert.NotContains(t, md, "cell")
}

func TestConvertDocxToMarkdownRejectsNonDocx(t *testing.T) {
	_, err := ConvertDocxToMarkdown([]byte("definitely not a zip"))
	assert.ErrorIs(t, err, ErrNotDocx)

	// a zip without word/document.xml is also not a docx
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ConvertDocxToMarkdown(buf.Bytes())
	assert.ErrorIs(t, err, ErrNotDocx)
}

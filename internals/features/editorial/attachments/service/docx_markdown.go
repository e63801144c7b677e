package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrNotDocx      = errors.New("file is not a .docx document")
	ErrDocxTooLarge = errors.New("docx document part is too large")
)

// hard cap on the uncompressed document.xml part (zip bombs)
const maxDocumentXMLBytes = 20 << 20

// ConvertDocxToMarkdown extracts word/document.xml from a .docx archive and
// renders its paragraphs as Markdown. Headings, bold, italic and list items
// survive the trip; tables, images and footnotes are dropped.
func ConvertDocxToMarkdown(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", ErrNotDocx
	}

	var docEntry *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docEntry = f
			break
		}
	}
	if docEntry == nil {
		return "", ErrNotDocx
	}
	if docEntry.UncompressedSize64 > maxDocumentXMLBytes {
		return "", ErrDocxTooLarge
	}

	rc, err := docEntry.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	return renderDocumentXML(io.LimitReader(rc, maxDocumentXMLBytes))
}

type docxRun struct {
	bold   bool
	italic bool
	text   strings.Builder
}

type docxParagraph struct {
	style    string // Heading1..Heading6, ListParagraph, ...
	numbered bool   // carries a numbering reference (w:numPr)
	runs     []*docxRun
}

func (p *docxParagraph) text() string {
	var sb strings.Builder
	for _, r := range p.runs {
		t := r.text.String()
		if t == "" {
			continue
		}
		switch {
		case r.bold && r.italic:
			sb.WriteString("***" + t + "***")
		case r.bold:
			sb.WriteString("**" + t + "**")
		case r.italic:
			sb.WriteString("*" + t + "*")
		default:
			sb.WriteString(t)
		}
	}
	return strings.TrimSpace(sb.String())
}

// renderDocumentXML walks the WordprocessingML token stream. Only the
// elements we care about are inspected; everything else is skipped.
func renderDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []*docxParagraph
		para       *docxParagraph
		run        *docxRun
		inRunProps bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				para = &docxParagraph{}
			case "r":
				if para != nil {
					run = &docxRun{}
					para.runs = append(para.runs, run)
				}
			case "rPr":
				inRunProps = run != nil
			case "b":
				if inRunProps && !attrIsFalse(el) {
					run.bold = true
				}
			case "i":
				if inRunProps && !attrIsFalse(el) {
					run.italic = true
				}
			case "pStyle":
				if para != nil {
					para.style = attrVal(el, "val")
				}
			case "numPr":
				if para != nil {
					para.numbered = true
				}
			case "t":
				if run != nil {
					var text string
					if err := dec.DecodeElement(&text, &el); err != nil {
						return "", fmt.Errorf("parse document.xml: %w", err)
					}
					run.text.WriteString(text)
				}
			case "tab":
				if run != nil {
					run.text.WriteString("\t")
				}
			case "br":
				if run != nil {
					run.text.WriteString("\n")
				}
			case "tbl":
				// tables are out of scope, skip the whole subtree
				if err := dec.Skip(); err != nil {
					return "", fmt.Errorf("parse document.xml: %w", err)
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "p":
				if para != nil {
					paragraphs = append(paragraphs, para)
					para = nil
				}
			case "r":
				run = nil
			case "rPr":
				inRunProps = false
			}
		}
	}

	return joinParagraphs(paragraphs), nil
}

func joinParagraphs(paragraphs []*docxParagraph) string {
	var (
		out      []string
		prevList bool
	)
	for _, p := range paragraphs {
		text := p.text()
		if text == "" {
			prevList = false
			continue
		}

		line := text
		isList := false
		switch {
		case headingLevel(p.style) > 0:
			line = strings.Repeat("#", headingLevel(p.style)) + " " + text
		case p.numbered || p.style == "ListParagraph":
			line = "- " + text
			isList = true
		}

		// list items stay adjacent, everything else gets a blank line
		if len(out) > 0 && !(isList && prevList) {
			out = append(out, "")
		}
		out = append(out, line)
		prevList = isList
	}
	return strings.Join(out, "\n")
}

func headingLevel(style string) int {
	s := strings.ToLower(style)
	if !strings.HasPrefix(s, "heading") {
		return 0
	}
	switch strings.TrimPrefix(s, "heading") {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	}
	return 0
}

func attrVal(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// <w:b w:val="false"/> and variants mean the toggle is OFF
func attrIsFalse(el xml.StartElement) bool {
	v := strings.ToLower(attrVal(el, "val"))
	return v == "false" || v == "0" || v == "none"
}

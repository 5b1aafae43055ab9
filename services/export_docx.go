package services

import (
	"bytes"
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

// GenerateDOCX creates a Word document from the quotation document and
// returns the raw .docx bytes.
func GenerateDOCX(doc QuoteDocument) ([]byte, error) {
	document, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("new docx document: %w", err)
	}

	for _, s := range doc.Sections {
		switch s.Kind {
		case SectionTitle:
			if _, err := document.AddHeading(s.Heading, 0); err != nil {
				return nil, fmt.Errorf("docx title: %w", err)
			}
			for _, f := range s.Fields {
				docxField(document, f)
			}
		case SectionFooter:
			document.AddEmptyParagraph().
				AddText(s.Note).Italic(true).Size(8).Color("8C8C8C")
		default:
			if _, err := document.AddHeading(s.Heading, 1); err != nil {
				return nil, fmt.Errorf("docx heading %q: %w", s.Heading, err)
			}
			for _, f := range s.Fields {
				docxField(document, f)
			}
			for _, item := range s.Items {
				document.AddParagraph("• " + item)
			}
			if s.Note != "" {
				document.AddEmptyParagraph().
					AddText(s.Note).Italic(true).Size(9).Color("646464")
			}
		}
	}

	var buf bytes.Buffer
	if err := document.Write(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}

// docxField renders "label : value", bolding the value when emphasized.
func docxField(document *docx.RootDoc, f Field) {
	p := document.AddEmptyParagraph()
	p.AddText(f.Label + " : ").Bold(true)
	value := p.AddText(f.Value)
	if f.Emphasis {
		value.Bold(true).Size(13)
	}
}

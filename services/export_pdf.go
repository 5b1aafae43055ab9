package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfGray      = &props.Color{Red: 100, Green: 100, Blue: 100}
	pdfLightGray = &props.Color{Red: 140, Green: 140, Blue: 140}
	pdfDark      = &props.Color{Red: 33, Green: 37, Blue: 41}
	pdfWhite     = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// GeneratePDF creates a PDF rendition of the quotation document using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(doc QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	for _, s := range doc.Sections {
		switch s.Kind {
		case SectionTitle:
			addPDFTitle(m, s)
		case SectionSummary:
			addPDFSummary(m, s)
		case SectionFooter:
			addPDFFooter(m, s)
		default:
			addPDFSection(m, s)
		}
	}

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdf.GetBytes(), nil
}

// addPDFTitle adds the centered title and the date/client line.
func addPDFTitle(m core.Maroto, s Section) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(s.Heading, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	for _, f := range s.Fields {
		style := props.Text{Size: 10, Align: align.Left}
		if f.Emphasis {
			style.Style = fontstyle.Bold
		}
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(fmt.Sprintf("%s : %s", f.Label, f.Value), style)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addPDFSection adds a heading followed by label/value rows, bullets and note.
func addPDFSection(m core.Maroto, s Section) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(text.New(s.Heading, props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: pdfDark,
			})),
		),
	)

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: pdfGray,
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Left,
	}

	for _, f := range s.Fields {
		m.AddRows(
			row.New(6).Add(
				col.New(5).Add(text.New(f.Label, labelStyle)),
				col.New(7).Add(text.New(f.Value, valueStyle)),
			),
		)
	}

	for _, item := range s.Items {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New("• "+item, props.Text{Size: 9, Align: align.Left, Left: 4})),
			),
		)
	}

	if s.Note != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(s.Note, props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: pdfGray,
				})),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addPDFSummary adds the right-aligned totals, the emphasized one on a dark band.
func addPDFSummary(m core.Maroto, s Section) {
	m.AddRows(row.New(4))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	grandCell := &props.Cell{BackgroundColor: pdfDark}

	for _, f := range s.Fields {
		labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
		valueStyle := props.Text{Size: 9, Align: align.Right}
		cell := summaryCell
		height := 7.0
		if f.Emphasis {
			labelStyle.Color = pdfWhite
			valueStyle.Color = pdfWhite
			valueStyle.Style = fontstyle.Bold
			cell = grandCell
			height = 8
		}
		m.AddRows(
			row.New(height).Add(
				col.New(8).Add(text.New(f.Label, labelStyle)).WithStyle(cell),
				col.New(4).Add(text.New(f.Value, valueStyle)).WithStyle(cell),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addPDFFooter adds the generated-on line at the bottom.
func addPDFFooter(m core.Maroto, s Section) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(s.Note, props.Text{
					Size:  7,
					Align: align.Left,
					Color: pdfLightGray,
				}),
			),
		),
	)
}

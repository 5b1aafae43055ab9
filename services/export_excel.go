package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const quoteSheetName = "Devis"

// GenerateExcel creates a spreadsheet rendition of the quotation document
// and returns the file contents as a byte slice. Column A holds labels and
// headings, column B the values.
func GenerateExcel(doc QuoteDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, quoteSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet := quoteSheetName

	if err := f.SetColWidth(sheet, "A", "A", 34); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 60); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headingStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create heading style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	valueStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create value style: %w", err)
	}

	emphasisStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create emphasis style: %w", err)
	}

	noteStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 9, Color: "#646464"},
	})
	if err != nil {
		return nil, fmt.Errorf("create note style: %w", err)
	}

	// ── Rows ────────────────────────────────────────────────────────────

	row := 1
	cell := func(column string) string { return fmt.Sprintf("%s%d", column, row) }

	for _, s := range doc.Sections {
		switch s.Kind {
		case SectionTitle:
			if err := f.MergeCell(sheet, cell("A"), cell("B")); err != nil {
				return nil, fmt.Errorf("merge title: %w", err)
			}
			f.SetCellValue(sheet, cell("A"), sanitizeExcelCell(s.Heading))
			f.SetCellStyle(sheet, cell("A"), cell("B"), titleStyle)
			row += 2
		case SectionFooter:
			row++
		default:
			f.SetCellValue(sheet, cell("A"), sanitizeExcelCell(s.Heading))
			f.SetCellStyle(sheet, cell("A"), cell("B"), headingStyle)
			row++
		}

		for _, field := range s.Fields {
			f.SetCellValue(sheet, cell("A"), sanitizeExcelCell(field.Label))
			f.SetCellValue(sheet, cell("B"), sanitizeExcelCell(field.Value))
			f.SetCellStyle(sheet, cell("A"), cell("A"), labelStyle)
			style := valueStyle
			if field.Emphasis {
				style = emphasisStyle
			}
			f.SetCellStyle(sheet, cell("B"), cell("B"), style)
			row++
		}

		for _, item := range s.Items {
			if err := f.MergeCell(sheet, cell("A"), cell("B")); err != nil {
				return nil, fmt.Errorf("merge condition: %w", err)
			}
			f.SetCellValue(sheet, cell("A"), "• "+sanitizeExcelCell(item))
			row++
		}

		if s.Note != "" {
			if err := f.MergeCell(sheet, cell("A"), cell("B")); err != nil {
				return nil, fmt.Errorf("merge note: %w", err)
			}
			f.SetCellValue(sheet, cell("A"), sanitizeExcelCell(s.Note))
			f.SetCellStyle(sheet, cell("A"), cell("B"), noteStyle)
			row++
		}

		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Client names are free text.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}

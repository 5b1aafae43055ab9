package services

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// sheetRows reads back every row of the quotation sheet.
func sheetRows(t *testing.T, data []byte) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != quoteSheetName {
		t.Fatalf("expected sheet %q, got %v", quoteSheetName, sheets)
	}

	rows, err := f.GetRows(quoteSheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	return rows
}

func findRow(rows [][]string, label string) []string {
	for _, r := range rows {
		if len(r) > 0 && r[0] == label {
			return r
		}
	}
	return nil
}

func TestGenerateExcel_OnSiteQuote(t *testing.T) {
	doc := testDocument(t, onSiteDistantQuote(t))

	result, err := GenerateExcel(doc)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	rows := sheetRows(t, result)
	if len(rows) == 0 || rows[0][0] != "Devis Formation NowBrains" {
		t.Fatalf("expected title in A1, got %v", rows)
	}

	tests := []struct {
		label  string
		expect string
	}{
		{"Client", "ACME"},
		{"Formation", "Formation aux Outils Collaboratifs M365 - 1 journée"},
		{"Zone de déplacement", "Distante"},
		{"Total HT", "2 600,00 € HT"},
		{"Total TTC", "3 120,00 € TTC"},
	}
	for _, tt := range tests {
		r := findRow(rows, tt.label)
		if len(r) < 2 {
			t.Errorf("no row labeled %q", tt.label)
			continue
		}
		if r[1] != tt.expect {
			t.Errorf("%s = %q, want %q", tt.label, r[1], tt.expect)
		}
	}
}

func TestGenerateExcel_RemoteQuoteHasNoTravel(t *testing.T) {
	result, err := GenerateExcel(testDocument(t, remoteQuote(t)))
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	rows := sheetRows(t, result)
	if r := findRow(rows, "Zone de déplacement"); r != nil {
		t.Errorf("remote quotation has a travel row: %v", r)
	}
	if r := findRow(rows, "Frais de déplacement"); r != nil {
		t.Errorf("remote quotation has a travel heading: %v", r)
	}
}

func TestGenerateExcel_ConditionsAreBulleted(t *testing.T) {
	result, err := GenerateExcel(testDocument(t, onSiteDistantQuote(t)))
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	var bullets int
	for _, r := range sheetRows(t, result) {
		if len(r) > 0 && strings.HasPrefix(r[0], "• ") {
			bullets++
		}
	}
	if bullets != 4 {
		t.Errorf("got %d condition bullets, want 4", bullets)
	}
}

func TestGenerateExcel_FormulaInjection(t *testing.T) {
	doc, err := BuildQuoteDocument(ExportRequest{
		ClientName: "=HYPERLINK(\"http://evil\")",
		Quotation:  remoteQuote(t),
		Date:       testDate,
	}, FormatEUR)
	if err != nil {
		t.Fatalf("BuildQuoteDocument() error = %v", err)
	}

	result, err := GenerateExcel(doc)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	r := findRow(sheetRows(t, result), "Client")
	if len(r) < 2 || !strings.HasPrefix(r[1], "'=") {
		t.Errorf("client cell not escaped: %v", r)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"", ""},
		{"ACME", "ACME"},
		{"=1+1", "'=1+1"},
		{"+33", "'+33"},
		{"-5", "'-5"},
		{"@SUM", "'@SUM"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

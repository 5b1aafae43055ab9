// Package templates holds the HTML views of the quotation calculator.
package templates

// Option is a radio or select choice.
type Option struct {
	Value       string
	Label       string
	Description string
	Selected    bool
}

// SummaryLine is one "label : value" row of the recap.
type SummaryLine struct {
	Label string
	Value string
	Note  string
}

// QuoteSummaryData is the live recap shown next to the form.
type QuoteSummaryData struct {
	// Missing holds the instructive messages of an incomplete selection.
	// When non-empty nothing else is shown.
	Missing []string

	Lines    []SummaryLine
	Totals   []SummaryLine
	Warning  string
	Formats  []Option
	Client   string
	CanQuote bool

	// Hidden carries the current selection into the export form.
	Hidden []HiddenField
}

type HiddenField struct {
	Name  string
	Value string
}

// CalculatorPageData is the full calculator page.
type CalculatorPageData struct {
	CompanyName   string
	DepartureCity string
	Offerings     []Option
	Modes         []Option
	Zones         []Option
	Sessions      string
	DailyRate     string
	MinDailyRate  string
	ShowZones     bool
	Summary       QuoteSummaryData
}

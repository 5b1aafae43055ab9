package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrClientNameRequired  = errors.New("client name is required")
	ErrRateBelowFloor      = errors.New("daily rate is below the minimum")
	ErrIncompleteQuotation = errors.New("quotation is incomplete")
)

// SectionKind identifies a fixed section of the quotation document.
type SectionKind int

const (
	SectionTitle SectionKind = iota
	SectionTraining
	SectionTravel
	SectionConditions
	SectionSummary
	SectionFooter
)

// Field is a labeled value line of a section.
type Field struct {
	Label    string
	Value    string
	Emphasis bool
}

// Section is one block of the document. Fields are rendered as "label : value"
// lines, Items as a bullet list, Note as a trailing small-print line.
type Section struct {
	Kind    SectionKind
	Heading string
	Fields  []Field
	Items   []string
	Note    string
}

// QuoteDocument is the renderer-independent content of an exported quotation.
type QuoteDocument struct {
	Title    string
	Filename string // without extension
	Sections []Section
}

// Section returns the section of the given kind, if present.
func (d QuoteDocument) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// ExportRequest is created when the user confirms the export.
type ExportRequest struct {
	ClientName    string
	CompanyName   string
	DepartureCity string
	Quotation     PricedQuotation
	Format        Format
	Date          time.Time
}

// Validate checks the export preconditions.
func (r ExportRequest) Validate() error {
	name := strings.TrimSpace(r.ClientName)
	err := validation.Validate(name, validation.Required)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClientNameRequired, err)
	}
	if r.Quotation.Offering.ID == "" || r.Quotation.Sessions <= 0 {
		return ErrIncompleteQuotation
	}
	if r.Quotation.BelowRateFloor {
		return fmt.Errorf("%w: %s < %s", ErrRateBelowFloor,
			FormatEUR(r.Quotation.DailyRate), FormatEUR(r.Quotation.MinDailyRate))
	}
	return nil
}

// BuildQuoteDocument lays out the quotation for export. Every figure is copied
// from the quotation; money is only formatted, never recomputed.
func BuildQuoteDocument(req ExportRequest, money MoneyFormatter) (QuoteDocument, error) {
	if err := req.Validate(); err != nil {
		return QuoteDocument{}, err
	}
	if money == nil {
		money = FormatEUR
	}

	q := req.Quotation
	client := strings.TrimSpace(req.ClientName)
	company := req.CompanyName
	if company == "" {
		company = "NowBrains"
	}

	doc := QuoteDocument{
		Title:    "Devis Formation " + company,
		Filename: ExportFilename(client, q.Offering),
	}

	doc.Sections = append(doc.Sections, Section{
		Kind:    SectionTitle,
		Heading: doc.Title,
		Fields: []Field{
			{Label: "Date", Value: req.Date.Format("02/01/2006")},
			{Label: "Client", Value: client, Emphasis: true},
		},
	})

	doc.Sections = append(doc.Sections, Section{
		Kind:    SectionTraining,
		Heading: "Détails de la formation",
		Fields: []Field{
			{Label: "Formation", Value: q.Offering.DisplayName()},
			{Label: "Mode", Value: q.Mode.Label()},
			{Label: "Nombre de sessions", Value: fmt.Sprintf("%d", q.Sessions)},
			{Label: "Nombre de jours facturés", Value: FormatDays(q.TotalDays)},
			{Label: "TJM appliqué", Value: money(q.DailyRate) + " HT"},
		},
	})

	if q.Mode == ModeOnSite && q.Zone != nil {
		doc.Sections = append(doc.Sections, Section{
			Kind:    SectionTravel,
			Heading: "Frais de déplacement",
			Fields: []Field{
				{Label: "Zone de déplacement", Value: q.Zone.Name},
				{Label: "Frais de déplacement", Value: money(q.TravelCost) + " HT"},
			},
			Note: TravelDerivation(q.Travel, money),
		})
	}

	conditions := []string{
		"Toutes les formations comprennent ½ journée de préparation obligatoire.",
		"Une session de formation ne peut pas dépasser 10 apprenants.",
	}
	if q.Mode == ModeOnSite {
		city := req.DepartureCity
		if city == "" {
			city = DefaultRules().DepartureCity
		}
		conditions = append(conditions,
			fmt.Sprintf("Le point de départ est toujours %s.", city),
			"Les forfaits couvrent le temps de déplacement, l'hébergement et les repas.",
		)
	}
	doc.Sections = append(doc.Sections, Section{
		Kind:    SectionConditions,
		Heading: "Conditions",
		Items:   conditions,
	})

	doc.Sections = append(doc.Sections, Section{
		Kind:    SectionSummary,
		Heading: "Récapitulatif financier",
		Fields: []Field{
			{Label: "Total HT", Value: money(q.TotalExcludingTax) + " HT"},
			{Label: fmt.Sprintf("TVA (%s)", FormatPercent(q.TaxRate)), Value: money(q.Tax)},
			{Label: "Total TTC", Value: money(q.TotalIncludingTax) + " TTC", Emphasis: true},
		},
	})

	doc.Sections = append(doc.Sections, Section{
		Kind: SectionFooter,
		Note: fmt.Sprintf("Devis généré le %s - %s", req.Date.Format("02/01/2006"), company),
	})

	return doc, nil
}

// TravelDerivation explains how the travel cost was obtained, using the
// operands recorded by the engine.
func TravelDerivation(t TravelBreakdown, money MoneyFormatter) string {
	if money == nil {
		money = FormatEURCompact
	}
	switch t.Rule {
	case TravelPerDay:
		return fmt.Sprintf("%s x %s = %s", money(t.DayFee), FormatDays(t.BilledDays), money(t.Cost))
	case TravelFlat:
		return fmt.Sprintf("%s (forfait journée)", money(t.DayFee))
	case TravelTiered:
		mid := ""
		if t.MidDays > 0 {
			mid = fmt.Sprintf("%s x %s j. + ", money(t.MidDayFee), formatCount(t.MidDays))
		}
		return fmt.Sprintf("%s (J1) + %s%s (dernier J) = %s",
			money(t.EndDayFee), mid, money(t.EndDayFee), money(t.Cost))
	}
	return "Aucun frais de déplacement"
}

// ExportFilename returns "Devis_<client>_<offering>" where the offering token is
// its display name without the duration suffix, whitespace collapsed to "_".
func ExportFilename(clientName string, offering Offering) string {
	return "Devis_" + sanitizeFilename(strings.TrimSpace(clientName)) + "_" + OfferingNameToken(offering.DisplayName())
}

// OfferingNameToken strips the " - <duration>" suffix from a display name and
// joins the remaining words with underscores.
func OfferingNameToken(displayName string) string {
	name, _, _ := strings.Cut(displayName, " - ")
	return strings.Join(strings.Fields(name), "_")
}

// sanitizeFilename removes path and header separators from a filename part.
func sanitizeFilename(s string) string {
	r := strings.NewReplacer("/", "-", "\\", "-", ":", "-", "\"", "", "\n", " ", "\r", " ")
	return r.Replace(s)
}

func formatCount(v float64) string {
	return strings.Replace(fmt.Sprintf("%g", v), ".", ",", 1)
}

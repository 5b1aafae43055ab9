package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"quotecalc/services"
	"quotecalc/templates"
)

// HandleCalculatorPage returns a handler that renders the calculator with the
// default selection.
func HandleCalculatorPage(deps *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rules := deps.Engine.Rules()
		sel := services.Selection{
			Sessions:  rules.DefaultSessions,
			DailyRate: rules.DefaultDailyRate,
		}
		data := buildPageData(deps, sel)
		component := templates.CalculatorPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteSummary returns a handler that prices the submitted selection and
// renders the recap partial.
func HandleQuoteSummary(deps *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			deps.logger().Warn("quote_summary: could not parse form", zap.Error(err))
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		sel := selectionFromForm(e.Request.Form, deps.Engine.Rules())
		data := buildSummaryData(deps, sel, e.Request.FormValue(fieldClientName), e.Request.FormValue(fieldFormat))
		component := templates.QuoteSummary(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func buildPageData(deps *Deps, sel services.Selection) templates.CalculatorPageData {
	catalog := deps.Engine.Catalog()
	rules := deps.Engine.Rules()

	data := templates.CalculatorPageData{
		CompanyName:   deps.CompanyName,
		DepartureCity: rules.DepartureCity,
		Sessions:      cast.ToString(sel.Sessions),
		DailyRate:     cast.ToString(sel.DailyRate),
		MinDailyRate:  cast.ToString(rules.MinDailyRate),
		ShowZones:     sel.Mode == services.ModeOnSite,
		Summary:       buildSummaryData(deps, sel, "", ""),
	}
	for _, o := range catalog.Offerings() {
		data.Offerings = append(data.Offerings, templates.Option{
			Value:    string(o.ID),
			Label:    o.DisplayName(),
			Selected: o.ID == sel.OfferingID,
		})
	}
	for _, m := range []services.DeliveryMode{services.ModeOnSite, services.ModeRemote} {
		data.Modes = append(data.Modes, templates.Option{
			Value:    string(m),
			Label:    m.Label(),
			Selected: m == sel.Mode,
		})
	}
	for _, z := range catalog.Zones() {
		data.Zones = append(data.Zones, templates.Option{
			Value:       string(z.ID),
			Label:       z.Name,
			Description: z.Description,
			Selected:    z.ID == sel.ZoneID,
		})
	}
	return data
}

// buildSummaryData prices the selection and lays out the recap. Figures are
// taken from the priced quotation and only formatted here.
func buildSummaryData(deps *Deps, sel services.Selection, client, format string) templates.QuoteSummaryData {
	q, missing := deps.Engine.Calculate(sel)
	if len(missing) > 0 {
		data := templates.QuoteSummaryData{}
		for _, m := range missing {
			data.Missing = append(data.Missing, m.Message())
		}
		return data
	}

	money := services.FormatEUR
	data := templates.QuoteSummaryData{
		Client:   client,
		CanQuote: !q.BelowRateFloor,
	}

	data.Lines = append(data.Lines,
		templates.SummaryLine{Label: "Formation", Value: q.Offering.DisplayName()},
		templates.SummaryLine{Label: "Mode", Value: q.Mode.Label()},
	)
	if q.Zone != nil {
		data.Lines = append(data.Lines, templates.SummaryLine{Label: "Zone de déplacement", Value: q.Zone.Name})
	}
	travel := templates.SummaryLine{Label: "Frais de déplacement", Value: money(q.TravelCost) + " HT"}
	if q.Travel.Rule != services.TravelNone {
		travel.Note = services.TravelDerivation(q.Travel, services.FormatEURCompact)
	}
	data.Lines = append(data.Lines,
		templates.SummaryLine{Label: "Nombre de sessions", Value: cast.ToString(q.Sessions)},
		templates.SummaryLine{Label: "Nombre de jours facturés", Value: services.FormatDays(q.TotalDays)},
		templates.SummaryLine{Label: "TJM", Value: money(q.DailyRate) + " HT"},
		travel,
	)

	data.Totals = []templates.SummaryLine{
		{Label: "Total HT", Value: money(q.TotalExcludingTax) + " HT"},
		{Label: "TVA (" + services.FormatPercent(q.TaxRate) + ")", Value: money(q.Tax)},
		{Label: "Total TTC", Value: money(q.TotalIncludingTax) + " TTC"},
	}

	if q.BelowRateFloor {
		data.Warning = rateFloorMessage(q.MinDailyRate)
	}

	selected, err := services.ParseFormat(format)
	if err != nil || format == "" {
		selected = deps.DefaultFormat
	}
	for _, f := range services.Formats {
		data.Formats = append(data.Formats, templates.Option{
			Value:    string(f),
			Label:    string(f),
			Selected: f == selected,
		})
	}

	fields := selectionFields(sel)
	for _, name := range []string{fieldOffering, fieldMode, fieldSessions, fieldZone, fieldDailyRate} {
		data.Hidden = append(data.Hidden, templates.HiddenField{Name: name, Value: fields.Get(name)})
	}

	return data
}

func rateFloorMessage(min float64) string {
	return "Le TJM minimum est de " + services.FormatEURCompact(min) + " HT."
}

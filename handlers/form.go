package handlers

import (
	"net/url"
	"strings"

	"github.com/spf13/cast"

	"quotecalc/services"
)

// Form field names shared by the calculator page and the export form.
const (
	fieldOffering   = "offering"
	fieldMode       = "mode"
	fieldSessions   = "sessions"
	fieldZone       = "zone"
	fieldDailyRate  = "daily_rate"
	fieldClientName = "client_name"
	fieldFormat     = "format"
)

// selectionFromForm builds a Selection from raw form values. Unparseable
// numbers are treated as not provided. An empty daily rate falls back to the
// default rate; the zone is only read for on-site delivery.
func selectionFromForm(form url.Values, rules services.Rules) services.Selection {
	sel := services.Selection{
		OfferingID: services.OfferingID(strings.TrimSpace(form.Get(fieldOffering))),
		Mode:       services.ParseDeliveryMode(form.Get(fieldMode)),
		Sessions:   parseCount(form.Get(fieldSessions)),
		DailyRate:  rules.DefaultDailyRate,
	}
	if raw := strings.TrimSpace(form.Get(fieldDailyRate)); raw != "" {
		sel.DailyRate = parseAmount(raw)
	}
	if sel.Mode == services.ModeOnSite {
		sel.ZoneID = services.ZoneID(strings.TrimSpace(form.Get(fieldZone)))
	}
	return sel
}

// selectionFields is the inverse of selectionFromForm, used to carry the
// selection into the export form.
func selectionFields(sel services.Selection) url.Values {
	v := url.Values{}
	v.Set(fieldOffering, string(sel.OfferingID))
	v.Set(fieldMode, string(sel.Mode))
	v.Set(fieldSessions, cast.ToString(sel.Sessions))
	v.Set(fieldZone, string(sel.ZoneID))
	v.Set(fieldDailyRate, cast.ToString(sel.DailyRate))
	return v
}

// parseCount reads a positive integer. Anything else yields 0.
func parseCount(s string) int {
	n, err := cast.ToIntE(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseAmount reads an amount typed with either decimal separator and
// optional thousands spaces ("1 200,50"). Anything else yields 0.
func parseAmount(s string) float64 {
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "€", "").Replace(s)
	s = strings.Replace(s, ",", ".", 1)
	v, err := cast.ToFloat64E(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Package services provides the quotation pricing engine, the quotation
// document formatter and the document renderers.
package services

import (
	"math"
	"strings"
)

// DeliveryMode is how the training is delivered.
type DeliveryMode string

const (
	ModeOnSite DeliveryMode = "on-site"
	ModeRemote DeliveryMode = "remote"
)

// Label returns the French wording used on screen and in exports.
func (m DeliveryMode) Label() string {
	switch m {
	case ModeOnSite:
		return "Présentiel"
	case ModeRemote:
		return "Distanciel"
	}
	return ""
}

// ParseDeliveryMode maps form values to a mode. Unknown values yield "".
func ParseDeliveryMode(s string) DeliveryMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on-site", "onsite", "presentiel", "présentiel":
		return ModeOnSite
	case "remote", "distanciel":
		return ModeRemote
	}
	return ""
}

// Rules holds the pricing constants.
type Rules struct {
	TaxRate          float64
	MinDailyRate     float64
	DistantEndDayFee float64
	DistantMidDayFee float64
	DefaultSessions  int
	DefaultDailyRate float64
	DepartureCity    string
}

// DefaultRules returns the standard pricing constants.
func DefaultRules() Rules {
	return Rules{
		TaxRate:          0.20,
		MinDailyRate:     1000,
		DistantEndDayFee: 300,
		DistantMidDayFee: 220,
		DefaultSessions:  1,
		DefaultDailyRate: 1000,
		DepartureCity:    "Lyon",
	}
}

// Selection is the user's current choice. It is replaced wholesale on every
// change; a zero Sessions means the field was left empty.
type Selection struct {
	OfferingID OfferingID
	Mode       DeliveryMode
	Sessions   int
	ZoneID     ZoneID
	DailyRate  float64
}

// MissingField names a selection field that prevents pricing.
type MissingField string

const (
	MissingOffering MissingField = "offering"
	MissingMode     MissingField = "mode"
	MissingZone     MissingField = "travel_zone"
	MissingSessions MissingField = "sessions"
)

// Message returns the instruction shown to the user for the field.
func (f MissingField) Message() string {
	switch f {
	case MissingOffering:
		return "Vous devez choisir une formation"
	case MissingMode:
		return "Vous devez choisir un mode de formation"
	case MissingZone:
		return "Vous devez choisir un forfait de déplacement"
	case MissingSessions:
		return "Vous devez indiquer un nombre de sessions"
	}
	return string(f)
}

// TravelRule is the formula used to derive a travel cost.
type TravelRule string

const (
	TravelNone   TravelRule = "none"
	TravelPerDay TravelRule = "per-day"
	TravelFlat   TravelRule = "flat"
	TravelTiered TravelRule = "tiered"
)

// TravelBreakdown records the operands of the travel cost formula so that the
// derivation can be displayed without recomputing anything.
type TravelBreakdown struct {
	Rule       TravelRule
	DayFee     float64 // per-day fee (regional) or flat fee (distant, one day)
	BilledDays float64 // days billed at DayFee
	EndDayFee  float64 // distant first and last day fee
	MidDayFee  float64 // distant intermediate day fee
	MidDays    float64 // distant intermediate day count
	Cost       float64
}

// PricedQuotation is the immutable result of pricing a complete selection.
type PricedQuotation struct {
	Offering          Offering
	Mode              DeliveryMode
	Sessions          int
	Zone              *TravelZone // nil when remote
	DailyRate         float64
	TaxRate           float64
	TotalDays         float64
	TravelCost        float64
	Travel            TravelBreakdown
	TotalExcludingTax float64
	Tax               float64
	TotalIncludingTax float64
	BelowRateFloor    bool
	MinDailyRate      float64
}

// Engine prices selections against a catalog.
type Engine struct {
	catalog *Catalog
	rules   Rules
}

func NewEngine(catalog *Catalog, rules Rules) *Engine {
	return &Engine{catalog: catalog, rules: rules}
}

func (e *Engine) Catalog() *Catalog { return e.catalog }

func (e *Engine) Rules() Rules { return e.rules }

// Calculate prices the selection. When any required field is missing or does
// not resolve, it returns no quotation and the list of missing fields.
func (e *Engine) Calculate(sel Selection) (PricedQuotation, []MissingField) {
	var missing []MissingField

	offering, err := e.catalog.Offering(sel.OfferingID)
	if err != nil {
		missing = append(missing, MissingOffering)
	}
	if sel.Mode != ModeOnSite && sel.Mode != ModeRemote {
		missing = append(missing, MissingMode)
	}

	var zone *TravelZone
	if sel.Mode == ModeOnSite {
		z, err := e.catalog.Zone(sel.ZoneID)
		if err != nil {
			missing = append(missing, MissingZone)
		} else {
			zone = &z
		}
	}
	if sel.Sessions <= 0 {
		missing = append(missing, MissingSessions)
	}
	if len(missing) > 0 {
		return PricedQuotation{}, missing
	}

	zoneID := ZoneID("")
	if zone != nil {
		zoneID = zone.ID
	}
	totalDays := BillableDays(offering.Duration, sel.Mode, zoneID, sel.Sessions)

	travel := TravelBreakdown{Rule: TravelNone}
	if zone != nil {
		travel = CalcTravel(*zone, totalDays, e.rules)
	}

	excl := CalcTotalExcludingTax(sel.DailyRate, totalDays, travel.Cost)
	tax := CalcTax(excl, e.rules.TaxRate)

	return PricedQuotation{
		Offering:          offering,
		Mode:              sel.Mode,
		Sessions:          sel.Sessions,
		Zone:              zone,
		DailyRate:         sel.DailyRate,
		TaxRate:           e.rules.TaxRate,
		TotalDays:         totalDays,
		TravelCost:        travel.Cost,
		Travel:            travel,
		TotalExcludingTax: excl,
		Tax:               tax,
		TotalIncludingTax: excl + tax,
		BelowRateFloor:    sel.DailyRate < e.rules.MinDailyRate,
		MinDailyRate:      e.rules.MinDailyRate,
	}, nil
}

// BillableDays returns the number of days billed for the sessions.
// Distant on-site trips cannot be billed as a fractional day: two half-day
// sessions share one travel day. Other zones and remote delivery bill half
// days as 0.5.
func BillableDays(duration DurationClass, mode DeliveryMode, zone ZoneID, sessions int) float64 {
	if mode == ModeOnSite && zone == ZoneDistant {
		if duration.IsHalfDay() {
			return float64((sessions + 1) / 2)
		}
		return float64(sessions)
	}
	return float64(sessions) * duration.DaysPerSession()
}

// CalcTravel derives the travel cost for an on-site trip to the zone.
func CalcTravel(zone TravelZone, totalDays float64, rules Rules) TravelBreakdown {
	switch zone.ID {
	case ZoneRegional:
		days := math.Ceil(totalDays)
		return TravelBreakdown{
			Rule:       TravelPerDay,
			DayFee:     zone.DailyRate,
			BilledDays: days,
			Cost:       zone.DailyRate * days,
		}
	case ZoneDistant:
		endFee := zone.DailyRate
		if endFee == 0 {
			endFee = rules.DistantEndDayFee
		}
		if totalDays <= 1 {
			return TravelBreakdown{
				Rule:       TravelFlat,
				DayFee:     endFee,
				BilledDays: 1,
				Cost:       endFee,
			}
		}
		midDays := math.Max(0, totalDays-2)
		return TravelBreakdown{
			Rule:      TravelTiered,
			EndDayFee: endFee,
			MidDayFee: rules.DistantMidDayFee,
			MidDays:   midDays,
			Cost:      endFee + rules.DistantMidDayFee*midDays + endFee,
		}
	}
	return TravelBreakdown{Rule: TravelNone}
}

func CalcTotalExcludingTax(dailyRate, totalDays, travelCost float64) float64 {
	return dailyRate*totalDays + travelCost
}

func CalcTax(totalExcludingTax, taxRate float64) float64 {
	return totalExcludingTax * taxRate
}

package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOfferingNotFound = errors.New("offering not found")
	ErrZoneNotFound     = errors.New("travel zone not found")
)

// DurationClass is the length of a single session of an offering.
type DurationClass string

const (
	DurationShort   DurationClass = "short"
	DurationHalfDay DurationClass = "half-day"
	DurationFullDay DurationClass = "full-day"
)

// DurationClasses lists every duration class in catalog order.
var DurationClasses = []DurationClass{DurationShort, DurationHalfDay, DurationFullDay}

// Label returns the catalog wording for the duration.
func (d DurationClass) Label() string {
	switch d {
	case DurationShort:
		return "2 heures"
	case DurationHalfDay:
		return "½ journée"
	case DurationFullDay:
		return "1 journée"
	}
	return string(d)
}

// IsHalfDay reports whether sessions are billed as half days.
// Short (2h) sessions are billed like half days.
func (d DurationClass) IsHalfDay() bool {
	return d == DurationShort || d == DurationHalfDay
}

// DaysPerSession returns the billable days consumed by one session.
func (d DurationClass) DaysPerSession() float64 {
	if d.IsHalfDay() {
		return 0.5
	}
	return 1
}

// ParseDurationClass accepts either a class key ("half-day") or the catalog
// wording ("½ journée", "1 journée", "2 heures").
func ParseDurationClass(s string) (DurationClass, error) {
	s = strings.TrimSpace(s)
	for _, d := range DurationClasses {
		if s == string(d) || s == d.Label() {
			return d, nil
		}
	}
	switch {
	case strings.Contains(s, "½"):
		return DurationHalfDay, nil
	case strings.Contains(s, "heure"):
		return DurationShort, nil
	case strings.Contains(s, "journée"):
		return DurationFullDay, nil
	}
	return "", fmt.Errorf("unknown duration class %q", s)
}

// OfferingID identifies a training offering.
type OfferingID string

const (
	OfferingCyber2h   OfferingID = "cyber-2h"
	OfferingCyberHalf OfferingID = "cyber-half"
	OfferingM365      OfferingID = "m365"
	OfferingAIHalf    OfferingID = "ai-half"
	OfferingAIFull    OfferingID = "ai-full"
)

// Offering is a training product of the catalog.
type Offering struct {
	ID       OfferingID
	Name     string
	Duration DurationClass
}

// DisplayName returns the name followed by the duration, e.g.
// "Formation IA - ½ journée".
func (o Offering) DisplayName() string {
	return o.Name + " - " + o.Duration.Label()
}

// ZoneID identifies a travel zone.
type ZoneID string

const (
	ZoneLocal    ZoneID = "local"
	ZoneRegional ZoneID = "regional"
	ZoneDistant  ZoneID = "distant"
)

// ZoneIDs lists the closed set of travel zones.
var ZoneIDs = []ZoneID{ZoneLocal, ZoneRegional, ZoneDistant}

// TravelZone is a pricing tier for on-site delivery distance.
// DailyRate is the per-day fee for the regional zone and the first/last day
// fee for the distant zone.
type TravelZone struct {
	ID          ZoneID
	Name        string
	Description string
	DailyRate   float64
}

// Catalog holds the read-only offering and travel zone reference data.
type Catalog struct {
	offerings []Offering
	zones     []TravelZone
}

// NewCatalog validates and copies the given entries.
func NewCatalog(offerings []Offering, zones []TravelZone) (*Catalog, error) {
	seenOfferings := make(map[OfferingID]bool, len(offerings))
	normalized := make([]Offering, 0, len(offerings))
	for _, o := range offerings {
		if o.ID == "" {
			return nil, errors.New("catalog: offering with empty id")
		}
		if seenOfferings[o.ID] {
			return nil, fmt.Errorf("catalog: duplicate offering %q", o.ID)
		}
		d, err := ParseDurationClass(string(o.Duration))
		if err != nil {
			return nil, fmt.Errorf("catalog: offering %q: %w", o.ID, err)
		}
		o.Duration = d
		normalized = append(normalized, o)
		seenOfferings[o.ID] = true
	}

	seenZones := make(map[ZoneID]bool, len(zones))
	for _, z := range zones {
		if !isKnownZone(z.ID) {
			return nil, fmt.Errorf("catalog: unknown travel zone %q", z.ID)
		}
		if seenZones[z.ID] {
			return nil, fmt.Errorf("catalog: duplicate travel zone %q", z.ID)
		}
		if z.DailyRate < 0 {
			return nil, fmt.Errorf("catalog: travel zone %q has a negative rate", z.ID)
		}
		seenZones[z.ID] = true
	}

	return &Catalog{
		offerings: normalized,
		zones:     append([]TravelZone(nil), zones...),
	}, nil
}

func isKnownZone(id ZoneID) bool {
	for _, known := range ZoneIDs {
		if id == known {
			return true
		}
	}
	return false
}

// DefaultCatalog returns the reference offerings and travel zones.
func DefaultCatalog() *Catalog {
	return &Catalog{
		offerings: []Offering{
			{ID: OfferingCyber2h, Name: "Formation Cybersécurité", Duration: DurationShort},
			{ID: OfferingCyberHalf, Name: "Formation Cybersécurité", Duration: DurationHalfDay},
			{ID: OfferingM365, Name: "Formation aux Outils Collaboratifs M365", Duration: DurationFullDay},
			{ID: OfferingAIHalf, Name: "Formation IA", Duration: DurationHalfDay},
			{ID: OfferingAIFull, Name: "Formation IA", Duration: DurationFullDay},
		},
		zones: []TravelZone{
			{
				ID:          ZoneLocal,
				Name:        "Local",
				Description: "Demi-journée possible, pas de frais de déplacement, jusqu'à 1h de trajet maximum",
				DailyRate:   0,
			},
			{
				ID:          ZoneRegional,
				Name:        "Régional",
				Description: "Demi-journée possible, 180 € HT / jour, de 1h à 2h30 de trajet maximum (sauf Paris)",
				DailyRate:   180,
			},
			{
				ID:          ZoneDistant,
				Name:        "Distante",
				Description: "Minimum une journée complète, 300 € HT premier et dernier jour, 220 € HT par jour intermédiaire",
				DailyRate:   300,
			},
		},
	}
}

// Offering resolves an offering by id.
func (c *Catalog) Offering(id OfferingID) (Offering, error) {
	for _, o := range c.offerings {
		if o.ID == id {
			return o, nil
		}
	}
	return Offering{}, fmt.Errorf("%w: %q", ErrOfferingNotFound, id)
}

// Zone resolves a travel zone by id.
func (c *Catalog) Zone(id ZoneID) (TravelZone, error) {
	for _, z := range c.zones {
		if z.ID == id {
			return z, nil
		}
	}
	return TravelZone{}, fmt.Errorf("%w: %q", ErrZoneNotFound, id)
}

// Offerings returns a copy of the offerings in catalog order.
func (c *Catalog) Offerings() []Offering {
	return append([]Offering(nil), c.offerings...)
}

// Zones returns a copy of the travel zones in catalog order.
func (c *Catalog) Zones() []TravelZone {
	return append([]TravelZone(nil), c.zones...)
}

// Complete reports whether the catalog can price every selection: it needs
// at least one offering and every travel zone.
func (c *Catalog) Complete() bool {
	if c == nil || len(c.offerings) == 0 {
		return false
	}
	for _, id := range ZoneIDs {
		if _, err := c.Zone(id); err != nil {
			return false
		}
	}
	return true
}

package services

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if len(c.Offerings()) != 5 {
		t.Errorf("expected 5 offerings, got %d", len(c.Offerings()))
	}
	if len(c.Zones()) != 3 {
		t.Errorf("expected 3 travel zones, got %d", len(c.Zones()))
	}

	o, err := c.Offering(OfferingM365)
	if err != nil {
		t.Fatalf("Offering(m365) error = %v", err)
	}
	if o.Duration != DurationFullDay {
		t.Errorf("m365 duration = %v, want full-day", o.Duration)
	}
	if o.DisplayName() != "Formation aux Outils Collaboratifs M365 - 1 journée" {
		t.Errorf("unexpected display name %q", o.DisplayName())
	}
}

func TestCatalogLookup_NotFound(t *testing.T) {
	c := DefaultCatalog()

	if _, err := c.Offering("unknown"); !errors.Is(err, ErrOfferingNotFound) {
		t.Errorf("Offering(unknown) error = %v, want ErrOfferingNotFound", err)
	}
	if _, err := c.Zone("moon"); !errors.Is(err, ErrZoneNotFound) {
		t.Errorf("Zone(moon) error = %v, want ErrZoneNotFound", err)
	}
	if _, err := c.Zone(""); !errors.Is(err, ErrZoneNotFound) {
		t.Errorf("Zone(\"\") error = %v, want ErrZoneNotFound", err)
	}
}

func TestCatalogCopiesAreIndependent(t *testing.T) {
	c := DefaultCatalog()
	offerings := c.Offerings()
	offerings[0].Name = "changed"

	o, _ := c.Offering(offerings[0].ID)
	if o.Name == "changed" {
		t.Error("mutating Offerings() result must not change the catalog")
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	zones := DefaultCatalog().Zones()

	tests := []struct {
		name      string
		offerings []Offering
		zones     []TravelZone
		wantErr   bool
	}{
		{"valid", DefaultCatalog().Offerings(), zones, false},
		{"empty id", []Offering{{Name: "X", Duration: DurationFullDay}}, zones, true},
		{"duplicate offering", []Offering{
			{ID: "a", Name: "A", Duration: DurationFullDay},
			{ID: "a", Name: "A", Duration: DurationHalfDay},
		}, zones, true},
		{"bad duration", []Offering{{ID: "a", Name: "A", Duration: "weekly"}}, zones, true},
		{"label duration normalized", []Offering{{ID: OfferingAIHalf, Name: "IA", Duration: "½ journée"}}, zones, false},
		{"unknown zone", nil, []TravelZone{{ID: "abroad"}}, true},
		{"duplicate zone", nil, []TravelZone{{ID: ZoneLocal}, {ID: ZoneLocal}}, true},
		{"negative rate", nil, []TravelZone{{ID: ZoneRegional, DailyRate: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.offerings, tt.zones)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCatalog_NormalizesDurationLabels(t *testing.T) {
	catalog, err := NewCatalog(
		[]Offering{{ID: OfferingAIHalf, Name: "IA", Duration: "½ journée"}},
		DefaultCatalog().Zones(),
	)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	o, err := catalog.Offering(OfferingAIHalf)
	if err != nil {
		t.Fatalf("Offering() error = %v", err)
	}
	if o.Duration != DurationHalfDay {
		t.Errorf("Duration = %q, want %q", o.Duration, DurationHalfDay)
	}

	q, missing := NewEngine(catalog, DefaultRules()).Calculate(Selection{
		OfferingID: OfferingAIHalf,
		Mode:       ModeRemote,
		Sessions:   4,
		DailyRate:  1200,
	})
	if len(missing) > 0 {
		t.Fatalf("Calculate() missing = %v", missing)
	}
	if q.TotalDays != 2 {
		t.Errorf("TotalDays = %v, want 2", q.TotalDays)
	}
	if q.TotalExcludingTax != 2400 {
		t.Errorf("TotalExcludingTax = %v, want 2400", q.TotalExcludingTax)
	}
}

func TestCatalog_Complete(t *testing.T) {
	offerings := DefaultCatalog().Offerings()
	zones := DefaultCatalog().Zones()

	tests := []struct {
		name      string
		offerings []Offering
		zones     []TravelZone
		expect    bool
	}{
		{"default", offerings, zones, true},
		{"no offerings", nil, zones, false},
		{"no zones", offerings, nil, false},
		{"missing distant zone", offerings, zones[:2], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := NewCatalog(tt.offerings, tt.zones)
			if err != nil {
				t.Fatalf("NewCatalog() error = %v", err)
			}
			if got := catalog.Complete(); got != tt.expect {
				t.Errorf("Complete() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestParseDurationClass(t *testing.T) {
	tests := []struct {
		input   string
		expect  DurationClass
		wantErr bool
	}{
		{"half-day", DurationHalfDay, false},
		{"½ journée", DurationHalfDay, false},
		{"1 journée", DurationFullDay, false},
		{"2 heures", DurationShort, false},
		{"short", DurationShort, false},
		{"une ½ journée", DurationHalfDay, false},
		{"weekly", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDurationClass(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDurationClass(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expect {
				t.Errorf("ParseDurationClass(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

package collections_test

import (
	"testing"

	"go.uber.org/zap"

	"quotecalc/collections"
	"quotecalc/services"
	"quotecalc/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app, services.DefaultCatalog(), zap.NewNop()); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	offeringsCol, _ := app.FindCollectionByNameOrId(collections.OfferingsCollection)
	offerings, err := app.FindAllRecords(offeringsCol)
	if err != nil {
		t.Fatalf("query offerings error: %v", err)
	}
	if len(offerings) != 5 {
		t.Errorf("expected 5 offerings, got %d", len(offerings))
	}

	zonesCol, _ := app.FindCollectionByNameOrId(collections.TravelZonesCollection)
	zones, _ := app.FindAllRecords(zonesCol)
	if len(zones) != 3 {
		t.Errorf("expected 3 travel zones, got %d", len(zones))
	}

	distant, err := app.FindFirstRecordByData(zonesCol, "code", "distant")
	if err != nil {
		t.Fatalf("distant zone not seeded: %v", err)
	}
	if distant.GetFloat("daily_rate") != 300 {
		t.Errorf("distant daily_rate = %v, want 300", distant.GetFloat("daily_rate"))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app, services.DefaultCatalog(), zap.NewNop()); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app, services.DefaultCatalog(), zap.NewNop()); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	offeringsCol, _ := app.FindCollectionByNameOrId(collections.OfferingsCollection)
	offerings, _ := app.FindAllRecords(offeringsCol)
	if len(offerings) != 5 {
		t.Errorf("expected 5 offerings after idempotent seed, got %d", len(offerings))
	}
}

func TestLoadCatalog_RoundTrip(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	catalog, err := collections.LoadCatalog(app)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}

	want := services.DefaultCatalog()
	got := catalog.Offerings()
	if len(got) != len(want.Offerings()) {
		t.Fatalf("got %d offerings, want %d", len(got), len(want.Offerings()))
	}
	for i, o := range want.Offerings() {
		if got[i] != o {
			t.Errorf("offering %d = %+v, want %+v", i, got[i], o)
		}
	}
	for i, z := range want.Zones() {
		if catalog.Zones()[i] != z {
			t.Errorf("zone %d = %+v, want %+v", i, catalog.Zones()[i], z)
		}
	}
}

func TestLoadCatalog_PricesLikeDefault(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	catalog, err := collections.LoadCatalog(app)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}

	q, missing := services.NewEngine(catalog, services.DefaultRules()).Calculate(services.Selection{
		OfferingID: services.OfferingM365,
		Mode:       services.ModeOnSite,
		Sessions:   2,
		ZoneID:     services.ZoneDistant,
		DailyRate:  1000,
	})
	if len(missing) > 0 {
		t.Fatalf("unexpected missing fields: %v", missing)
	}
	if q.TotalIncludingTax != 3120 {
		t.Errorf("TotalIncludingTax = %v, want 3120", q.TotalIncludingTax)
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	catalog, err := collections.LoadCatalog(app)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if len(catalog.Offerings()) != 0 || len(catalog.Zones()) != 0 {
		t.Errorf("expected an empty catalog before seeding")
	}
}

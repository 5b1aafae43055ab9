package collections_test

import (
	"testing"

	"go.uber.org/zap"

	"quotecalc/collections"
	"quotecalc/services"
	"quotecalc/testhelpers"
)

func TestMigrateMissingCatalogEntries_AddsNewOffering(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// A database seeded before ai-full existed.
	catalog := services.DefaultCatalog()
	var older []services.Offering
	for _, o := range catalog.Offerings() {
		if o.ID != services.OfferingAIFull {
			older = append(older, o)
		}
	}
	oldCatalog, err := services.NewCatalog(older, catalog.Zones())
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}
	if err := collections.Seed(app, oldCatalog, zap.NewNop()); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	if err := collections.MigrateMissingCatalogEntries(app, catalog, zap.NewNop()); err != nil {
		t.Fatalf("MigrateMissingCatalogEntries() error: %v", err)
	}

	offeringsCol, _ := app.FindCollectionByNameOrId(collections.OfferingsCollection)
	offerings, _ := app.FindAllRecords(offeringsCol)
	if len(offerings) != 5 {
		t.Errorf("expected 5 offerings after migration, got %d", len(offerings))
	}
	if _, err := app.FindFirstRecordByData(offeringsCol, "code", string(services.OfferingAIFull)); err != nil {
		t.Errorf("ai-full was not added: %v", err)
	}
}

func TestMigrateMissingCatalogEntries_KeepsEditedRecords(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	zonesCol, _ := app.FindCollectionByNameOrId(collections.TravelZonesCollection)
	regional, err := app.FindFirstRecordByData(zonesCol, "code", "regional")
	if err != nil {
		t.Fatalf("regional zone not found: %v", err)
	}
	regional.Set("daily_rate", 200)
	if err := app.Save(regional); err != nil {
		t.Fatalf("save regional: %v", err)
	}

	if err := collections.MigrateMissingCatalogEntries(app, services.DefaultCatalog(), zap.NewNop()); err != nil {
		t.Fatalf("MigrateMissingCatalogEntries() error: %v", err)
	}

	regional, _ = app.FindFirstRecordByData(zonesCol, "code", "regional")
	if regional.GetFloat("daily_rate") != 200 {
		t.Errorf("regional daily_rate = %v, want the edited 200", regional.GetFloat("daily_rate"))
	}
	zones, _ := app.FindAllRecords(zonesCol)
	if len(zones) != 3 {
		t.Errorf("expected 3 zones, got %d", len(zones))
	}
}

func TestMigrateMissingCatalogEntries_EmptyDatabaseIsNoop(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.MigrateMissingCatalogEntries(app, services.DefaultCatalog(), zap.NewNop()); err != nil {
		t.Fatalf("MigrateMissingCatalogEntries() error: %v", err)
	}

	offeringsCol, _ := app.FindCollectionByNameOrId(collections.OfferingsCollection)
	offerings, _ := app.FindAllRecords(offeringsCol)
	if len(offerings) != 0 {
		t.Errorf("expected no offerings, got %d", len(offerings))
	}
}

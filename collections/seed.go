package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotecalc/services"
)

// Seed populates the catalog collections with the reference offerings and
// travel zones. It is safe to call on every startup because it returns early
// if any offering records already exist.
func Seed(app *pocketbase.PocketBase, catalog *services.Catalog, logger *zap.Logger) error {
	// ── idempotency: skip if offerings already exist ─────────────────
	offeringsCol, err := app.FindCollectionByNameOrId(OfferingsCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find offerings collection: %w", err)
	}
	existing, err := app.FindAllRecords(offeringsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query offerings: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	zonesCol, err := app.FindCollectionByNameOrId(TravelZonesCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find travel_zones collection: %w", err)
	}

	logger.Info("seed: offerings collection is empty, inserting catalog")

	err = app.RunInTransaction(func(txApp core.App) error {
		for i, o := range catalog.Offerings() {
			if err := txApp.Save(offeringRecord(offeringsCol, o, i+1)); err != nil {
				return fmt.Errorf("seed: offering %q: %w", o.ID, err)
			}
		}
		for i, z := range catalog.Zones() {
			if err := txApp.Save(zoneRecord(zonesCol, z, i+1)); err != nil {
				return fmt.Errorf("seed: travel zone %q: %w", z.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("seed: catalog inserted",
		zap.Int("offerings", len(catalog.Offerings())),
		zap.Int("travel_zones", len(catalog.Zones())),
	)
	return nil
}

func offeringRecord(col *core.Collection, o services.Offering, sortOrder int) *core.Record {
	r := core.NewRecord(col)
	r.Set("code", string(o.ID))
	r.Set("name", o.Name)
	r.Set("duration", string(o.Duration))
	r.Set("sort_order", sortOrder)
	return r
}

func zoneRecord(col *core.Collection, z services.TravelZone, sortOrder int) *core.Record {
	r := core.NewRecord(col)
	r.Set("code", string(z.ID))
	r.Set("name", z.Name)
	r.Set("description", z.Description)
	r.Set("daily_rate", z.DailyRate)
	r.Set("sort_order", sortOrder)
	return r
}

package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"

	"quotecalc/services"
)

// MigrateMissingCatalogEntries inserts reference offerings and travel zones
// that a previously seeded database does not have yet. Existing records are
// never modified. Safe to call on every startup -- returns early if nothing
// to migrate.
func MigrateMissingCatalogEntries(app *pocketbase.PocketBase, catalog *services.Catalog, logger *zap.Logger) error {
	offeringsCol, err := app.FindCollectionByNameOrId(OfferingsCollection)
	if err != nil {
		return fmt.Errorf("migrate: could not find offerings collection: %w", err)
	}
	zonesCol, err := app.FindCollectionByNameOrId(TravelZonesCollection)
	if err != nil {
		return fmt.Errorf("migrate: could not find travel_zones collection: %w", err)
	}

	existingOfferings, err := app.FindAllRecords(offeringsCol)
	if err != nil {
		return fmt.Errorf("migrate: could not query offerings: %w", err)
	}
	if len(existingOfferings) == 0 {
		// Empty database: Seed owns the first insert.
		return nil
	}

	added := 0
	for i, o := range catalog.Offerings() {
		if _, err := app.FindFirstRecordByData(offeringsCol, "code", string(o.ID)); err == nil {
			continue
		}
		if err := app.Save(offeringRecord(offeringsCol, o, len(existingOfferings)+i+1)); err != nil {
			logger.Warn("migrate: failed to add offering", zap.String("code", string(o.ID)), zap.Error(err))
			continue
		}
		added++
	}
	for i, z := range catalog.Zones() {
		if _, err := app.FindFirstRecordByData(zonesCol, "code", string(z.ID)); err == nil {
			continue
		}
		if err := app.Save(zoneRecord(zonesCol, z, i+1)); err != nil {
			logger.Warn("migrate: failed to add travel zone", zap.String("code", string(z.ID)), zap.Error(err))
			continue
		}
		added++
	}

	if added > 0 {
		logger.Info("migrate: catalog entries added", zap.Int("count", added))
	}
	return nil
}

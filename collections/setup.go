package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotecalc/services"
)

const (
	OfferingsCollection   = "offerings"
	TravelZonesCollection = "travel_zones"
)

// Setup programmatically creates/ensures the offerings and travel_zones
// collections exist.
func Setup(app *pocketbase.PocketBase, logger *zap.Logger) error {
	durations := make([]string, len(services.DurationClasses))
	for i, d := range services.DurationClasses {
		durations[i] = string(d)
	}

	_, err := ensureCollection(app, logger, OfferingsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "code", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "duration",
			Required:  true,
			Values:    durations,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.AddIndex("idx_offerings_code", true, "code", "")
	})
	if err != nil {
		return err
	}

	zones := make([]string, len(services.ZoneIDs))
	for i, z := range services.ZoneIDs {
		zones[i] = string(z)
	}

	_, err = ensureCollection(app, logger, TravelZonesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "code",
			Required:  true,
			Values:    zones,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "daily_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.AddIndex("idx_travel_zones_code", true, "code", "")
	})
	return err
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, logger *zap.Logger, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		logger.Debug("collection already exists, skipping creation", zap.String("collection", name))
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("failed to create collection %q: %w", name, err)
	}

	logger.Info("created collection", zap.String("collection", name), zap.String("id", collection.Id))
	return collection, nil
}

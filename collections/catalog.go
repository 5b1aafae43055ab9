package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"

	"quotecalc/services"
)

// LoadCatalog reads the offerings and travel zones, ordered by sort_order,
// into a read-only catalog.
func LoadCatalog(app *pocketbase.PocketBase) (*services.Catalog, error) {
	offeringRecords, err := app.FindRecordsByFilter(OfferingsCollection, "id != ''", "sort_order", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load catalog: could not query offerings: %w", err)
	}

	offerings := make([]services.Offering, 0, len(offeringRecords))
	for _, r := range offeringRecords {
		duration, err := services.ParseDurationClass(r.GetString("duration"))
		if err != nil {
			return nil, fmt.Errorf("load catalog: offering %q: %w", r.GetString("code"), err)
		}
		offerings = append(offerings, services.Offering{
			ID:       services.OfferingID(r.GetString("code")),
			Name:     r.GetString("name"),
			Duration: duration,
		})
	}

	zoneRecords, err := app.FindRecordsByFilter(TravelZonesCollection, "id != ''", "sort_order", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load catalog: could not query travel zones: %w", err)
	}

	zones := make([]services.TravelZone, 0, len(zoneRecords))
	for _, r := range zoneRecords {
		zones = append(zones, services.TravelZone{
			ID:          services.ZoneID(r.GetString("code")),
			Name:        r.GetString("name"),
			Description: r.GetString("description"),
			DailyRate:   r.GetFloat("daily_rate"),
		})
	}

	catalog, err := services.NewCatalog(offerings, zones)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

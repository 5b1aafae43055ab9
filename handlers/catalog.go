package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

type offeringJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Duration    string  `json:"duration"`
	Label       string  `json:"label"`
	DaysPerUnit float64 `json:"days_per_session"`
}

type zoneJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DailyRate   float64 `json:"daily_rate"`
}

type catalogJSON struct {
	Offerings    []offeringJSON `json:"offerings"`
	Zones        []zoneJSON     `json:"travel_zones"`
	MinDailyRate float64        `json:"min_daily_rate"`
	TaxRate      float64        `json:"tax_rate"`
}

// HandleCatalog returns a handler that lists the offerings and travel zones.
func HandleCatalog(deps *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		catalog := deps.Engine.Catalog()
		rules := deps.Engine.Rules()

		resp := catalogJSON{
			Offerings:    []offeringJSON{},
			Zones:        []zoneJSON{},
			MinDailyRate: rules.MinDailyRate,
			TaxRate:      rules.TaxRate,
		}
		for _, o := range catalog.Offerings() {
			resp.Offerings = append(resp.Offerings, offeringJSON{
				ID:          string(o.ID),
				Name:        o.Name,
				Duration:    string(o.Duration),
				Label:       o.DisplayName(),
				DaysPerUnit: o.Duration.DaysPerSession(),
			})
		}
		for _, z := range catalog.Zones() {
			resp.Zones = append(resp.Zones, zoneJSON{
				ID:          string(z.ID),
				Name:        z.Name,
				Description: z.Description,
				DailyRate:   z.DailyRate,
			})
		}
		return e.JSON(http.StatusOK, resp)
	}
}

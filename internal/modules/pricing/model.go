// README: Price table and quote types shared by every resolution strategy.
package pricing

import (
	"transfer/internal/modules/distance"
	"transfer/internal/types"
)

// PriceTable maps every category to a price.
type PriceTable map[VehicleCategory]types.Money

// prices builds a PriceTable in catalogue order from values in reais.
func prices(reais ...float64) PriceTable {
	if len(reais) != len(Catalog) {
		panic("pricing: price row does not cover every category")
	}
	t := make(PriceTable, len(reais))
	for i, v := range reais {
		t[Catalog[i].Category] = types.BRL(v)
	}
	return t
}

type StrategyName string

const (
	StrategyDaily      StrategyName = "daily"
	StrategyRegional   StrategyName = "regional"
	StrategyPostal     StrategyName = "postal_route"
	StrategyNamedRoute StrategyName = "named_route"
	StrategyDynamic    StrategyName = "dynamic"
)

// TripQuote is created per resolution call and never persisted. Distance and
// minutes are informational unless Strategy is dynamic.
type TripQuote struct {
	Category         VehicleCategory `json:"category"`
	DistanceKm       float64         `json:"distance_km"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	BasePrice        types.Money     `json:"base_price"`
	FinalPrice       types.Money     `json:"final_price"`
	Strategy         StrategyName    `json:"strategy"`
	Source           distance.Source `json:"source"`
}

type Request struct {
	Origin      string
	Destination string
	Category    VehicleCategory
}

func fixedQuote(req Request, price types.Money, est distance.Estimate, strategy StrategyName) TripQuote {
	return TripQuote{
		Category:         req.Category,
		DistanceKm:       est.DistanceKm,
		EstimatedMinutes: est.Minutes,
		BasePrice:        price,
		FinalPrice:       price,
		Strategy:         strategy,
		Source:           est.Source,
	}
}

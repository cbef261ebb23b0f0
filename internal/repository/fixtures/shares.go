package fixtures

import (
	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
)

func stateShares() []registry.StateShareSet {
	return []registry.StateShareSet{
		{Commodity: models.Soybeans, CropYear: "2024/25", Rows: []models.StateShareRow{
			{State: "MT", Production: 50900, Area: 12600, Pct: 29.7},
			{State: "PR", Production: 21400, Area: 5800, Pct: 12.5},
			{State: "GO", Production: 19900, Area: 4800, Pct: 11.6},
			{State: "MS", Production: 14600, Area: 4500, Pct: 8.5},
			{State: "RS", Production: 13400, Area: 6800, Pct: 7.8},
			{State: "MG", Production: 9300, Area: 2300, Pct: 5.4},
			{State: "BA", Production: 8400, Area: 2000, Pct: 4.9},
			{State: "TO", Production: 5100, Area: 1400, Pct: 3.0},
			{State: "SP", Production: 5000, Area: 1300, Pct: 2.9},
			{State: "MA", Production: 4600, Area: 1300, Pct: 2.7},
			{State: "PI", Production: 3300, Area: 1000, Pct: 1.9},
			{State: "Others", Production: 15580, Area: 3600, Pct: 9.1},
		}},
		{Commodity: models.Corn, CropYear: "2024/25", Rows: []models.StateShareRow{
			{State: "MT", Production: 51800, Area: 7300, Pct: 37.1},
			{State: "PR", Production: 15600, Area: 2700, Pct: 11.2},
			{State: "GO", Production: 12700, Area: 2000, Pct: 9.1},
			{State: "MS", Production: 12000, Area: 2300, Pct: 8.6},
			{State: "MG", Production: 8100, Area: 1400, Pct: 5.8},
			{State: "RS", Production: 5100, Area: 800, Pct: 3.7},
			{State: "SP", Production: 4300, Area: 1000, Pct: 3.1},
			{State: "Others", Production: 30100, Area: 4700, Pct: 21.5},
		}},
	}
}

package projection

import (
	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/service/derivation"
)

// BalanceRow is one crop year of a supply and demand table with the derived
// total supply.
type BalanceRow struct {
	Year         string  `json:"year"`
	OpeningStock float64 `json:"openingStock"`
	Production   float64 `json:"production"`
	Imports      float64 `json:"imports"`
	TotalSupply  float64 `json:"totalSupply"`
	Consumption  float64 `json:"consumption"`
	Exports      float64 `json:"exports"`
	EndingStock  float64 `json:"endingStock"`
	IsProjection bool    `json:"isProjection"`
}

// ProjectBalance converts a balance table. Total supply is summed before
// scaling so it matches the source table.
func ProjectBalance(rows []models.BalanceSheetRow, scale Scale) []BalanceRow {
	out := make([]BalanceRow, len(rows))
	for i, row := range rows {
		out[i] = BalanceRow{
			Year:         row.Year,
			OpeningStock: scale.Convert(row.OpeningStock),
			Production:   scale.Convert(row.Production),
			Imports:      scale.Convert(row.Imports),
			TotalSupply:  scale.Convert(derivation.TotalSupply(row)),
			Consumption:  scale.Convert(row.Consumption),
			Exports:      scale.Convert(row.Exports),
			EndingStock:  scale.Convert(row.EndingStock),
			IsProjection: row.IsProjection,
		}
	}
	return out
}

package derivation

import "github.com/mamadbah2/cropstats/internal/domain/models"

// TotalSupply is opening stock plus production plus imports.
func TotalSupply(row models.BalanceSheetRow) float64 {
	return row.OpeningStock + row.Production + row.Imports
}

// TotalDisposition is where the supply went: consumption, exports and what is left.
func TotalDisposition(row models.BalanceSheetRow) float64 {
	return row.EndingStock + row.Consumption + row.Exports
}

// ExpectedEndingStock applies the balance identity to the row's flows.
func ExpectedEndingStock(row models.BalanceSheetRow) float64 {
	return TotalSupply(row) - row.Consumption - row.Exports
}

// BalanceGap is disposition minus supply, which equals the reported ending
// stock minus the identity's result. Zero for a consistent row.
func BalanceGap(row models.BalanceSheetRow) float64 {
	return TotalDisposition(row) - TotalSupply(row)
}

// ContinuityBreak records a crop year whose opening stock differs from the
// previous year's ending stock.
type ContinuityBreak struct {
	Year             string  `json:"year"`
	PreviousYear     string  `json:"previousYear"`
	OpeningStock     float64 `json:"openingStock"`
	PriorEndingStock float64 `json:"priorEndingStock"`
}

// ContinuityBreaks scans consecutive rows and reports every carry-over
// mismatch larger than tolerance.
func ContinuityBreaks(rows []models.BalanceSheetRow, tolerance float64) []ContinuityBreak {
	var breaks []ContinuityBreak
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if abs(cur.OpeningStock-prev.EndingStock) > tolerance {
			breaks = append(breaks, ContinuityBreak{
				Year:             cur.Year,
				PreviousYear:     prev.Year,
				OpeningStock:     cur.OpeningStock,
				PriorEndingStock: prev.EndingStock,
			})
		}
	}
	return breaks
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

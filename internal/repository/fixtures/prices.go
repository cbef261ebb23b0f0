package fixtures

import "github.com/mamadbah2/cropstats/internal/domain/models"

const portParanagua = "Paranaguá"

type quoteTable map[models.Commodity]map[string][]float64

func priceRows(year int, table quoteTable, months int) []models.MonthlyPriceRow {
	out := make([]models.MonthlyPriceRow, 0, months)
	for m := 1; m <= months; m++ {
		quotes := make(map[models.Commodity]map[string]float64, len(table))
		for c, byLocation := range table {
			quotes[c] = make(map[string]float64, len(byLocation))
			for location, series := range byLocation {
				quotes[c][location] = series[m-1]
			}
		}
		out = append(out, models.MonthlyPriceRow{Year: year, Month: m, Quotes: quotes})
	}
	return out
}

func prices() []models.MonthlyPriceRow {
	y2024 := quoteTable{
		models.Soybeans: {
			"MT":          {130, 126, 119, 115, 113, 111, 108, 113, 119, 125, 131, 133},
			"PR":          {140, 136, 129, 125, 123, 121, 118, 123, 129, 135, 141, 143},
			portParanagua: {150, 146, 139, 135, 133, 131, 128, 133, 139, 145, 151, 153},
		},
		models.Corn: {
			"MT": {58, 56, 50, 49, 46, 45, 43, 46, 48, 53, 57, 59},
			"PR": {68, 65, 59, 58, 55, 54, 52, 55, 57, 62, 66, 68},
		},
		models.Wheat: {
			"PR": {88, 85, 82, 80, 78, 77, 79, 82, 85, 88, 91, 93},
		},
	}

	y2025 := quoteTable{
		models.Soybeans: {
			"MT":          {128, 124, 118, 116, 117, 115, 112, 116, 121, 124, 127},
			"PR":          {139, 135, 129, 127, 128, 126, 123, 127, 132, 135, 138},
			portParanagua: {149, 145, 139, 137, 138, 136, 133, 137, 142, 145, 148},
		},
		models.Corn: {
			"MT": {60, 62, 63, 58, 52, 47, 44, 45, 49, 52, 55},
			"PR": {70, 72, 73, 68, 62, 57, 54, 55, 59, 62, 65},
		},
		models.Wheat: {
			"PR": {92, 90, 87, 86, 84, 83, 80, 78, 76, 77, 79},
		},
	}

	return append(priceRows(2024, y2024, 12), priceRows(2025, y2025, 11)...)
}

package projection

import (
	"sort"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/service/derivation"
)

// PricePoint is one monthly quote at one location.
type PricePoint struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	MonthName    string   `json:"monthName"`
	Location     string   `json:"location"`
	Price        float64  `json:"priceBrl"`
	MoMChangePct *float64 `json:"momChangePct"`
}

// ProjectPrices flattens a commodity's quotes, location by location. An empty
// location selects every location quoted for the commodity. The first month
// of a series has no month-over-month change.
func ProjectPrices(rows []models.MonthlyPriceRow, c models.Commodity, location string) []PricePoint {
	locations := []string{location}
	if location == "" {
		locations = locationsOf(rows, c)
	}

	var out []PricePoint
	for _, loc := range locations {
		field := derivation.PriceField{Commodity: c, Location: loc}
		for i, row := range rows {
			price, ok := row.Quote(c, loc)
			if !ok {
				continue
			}
			out = append(out, PricePoint{
				Year:         row.Year,
				Month:        row.Month,
				MonthName:    models.MonthName(row.Month),
				Location:     loc,
				Price:        price,
				MoMChangePct: percentOrNil(derivation.MonthToMonthChange(rows, field, i)),
			})
		}
	}
	return out
}

func locationsOf(rows []models.MonthlyPriceRow, c models.Commodity) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		for loc := range row.Quotes[c] {
			if !seen[loc] {
				seen[loc] = true
				out = append(out, loc)
			}
		}
	}
	sort.Strings(out)
	return out
}

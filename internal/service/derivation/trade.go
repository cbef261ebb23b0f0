package derivation

import (
	"fmt"

	"github.com/mamadbah2/cropstats/internal/domain/models"
)

// PriceField addresses one quote column of a price series.
type PriceField struct {
	Commodity models.Commodity
	Location  string
}

// MonthToMonthChange is the percent move of a quote between series[index-1]
// and series[index].
func MonthToMonthChange(series []models.MonthlyPriceRow, field PriceField, index int) (float64, error) {
	if index <= 0 || index >= len(series) {
		return 0, fmt.Errorf("price index %d of %d: %w", index, len(series), models.ErrOutOfRange)
	}

	cur, ok := series[index].Quote(field.Commodity, field.Location)
	if !ok {
		return 0, fmt.Errorf("%s at %s month %d: %w", field.Commodity, field.Location, series[index].Month, models.ErrNotFound)
	}
	prev, ok := series[index-1].Quote(field.Commodity, field.Location)
	if !ok {
		return 0, fmt.Errorf("%s at %s month %d: %w", field.Commodity, field.Location, series[index-1].Month, models.ErrNotFound)
	}

	return PercentChange(cur, prev)
}

// ExportVolumes lists the monthly volumes of one commodity.
func ExportVolumes(rows []models.MonthlyExportRow, c models.Commodity) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = row.Volume(c)
	}
	return out
}

// RecordsCommodity reports whether any row carries a volume for c, zero
// included. A commodity absent from every row has no shipments on record.
func RecordsCommodity(rows []models.MonthlyExportRow, c models.Commodity) bool {
	for _, row := range rows {
		if _, ok := row.Volumes[c]; ok {
			return true
		}
	}
	return false
}

// SumExports totals a commodity's shipments over the rows.
func SumExports(rows []models.MonthlyExportRow, c models.Commodity) float64 {
	var total float64
	for _, row := range rows {
		total += row.Volume(c)
	}
	return total
}

// SumDestination totals the destination-bound shipments of a commodity.
func SumDestination(rows []models.MonthlyExportRow, c models.Commodity) float64 {
	var total float64
	for _, row := range rows {
		if v, ok := row.DestinationVolume(c); ok {
			total += v
		}
	}
	return total
}

// DestinationShare is the percentage of a commodity's shipments that went to
// the tracked destination.
func DestinationShare(rows []models.MonthlyExportRow, c models.Commodity) (float64, error) {
	return ShareOfTotal(SumDestination(rows, c), SumExports(rows, c))
}

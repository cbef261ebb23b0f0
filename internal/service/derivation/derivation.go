// Package derivation computes the figures the dashboard shows on top of the
// raw registry records: year-over-year changes, rolling averages, balance
// sheet identities, survey aggregates, shares and month-over-month moves.
//
// Every function is pure. Failures carry one of the models sentinel errors so
// callers can fall back to a placeholder instead of aborting a render.
package derivation

import (
	"fmt"
	"sort"

	"github.com/mamadbah2/cropstats/internal/domain/models"
)

// PercentChange returns (current - baseline) / baseline * 100.
func PercentChange(current, baseline float64) (float64, error) {
	if baseline == 0 {
		return 0, models.ErrDivisionUndefined
	}
	return (current - baseline) / baseline * 100, nil
}

// ShareOfTotal returns part / whole * 100.
func ShareOfTotal(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, models.ErrDivisionUndefined
	}
	return part / whole * 100, nil
}

// YearOverYearChange compares a commodity's production between two crop years
// of the historical series.
func YearOverYearChange(series []models.CropYearRecord, c models.Commodity, currentYear, baselineYear string) (float64, error) {
	current, err := figuresFor(series, c, currentYear)
	if err != nil {
		return 0, err
	}
	baseline, err := figuresFor(series, c, baselineYear)
	if err != nil {
		return 0, err
	}

	change, err := PercentChange(current.Production, baseline.Production)
	if err != nil {
		return 0, fmt.Errorf("%s production %s vs %s: %w", c, currentYear, baselineYear, err)
	}
	return change, nil
}

// RollingAverage is the arithmetic mean of attr over the most recent window
// crop years that carry the commodity, in ascending year order. To average
// an earlier window, pass a series truncated with Through.
func RollingAverage(series []models.CropYearRecord, c models.Commodity, attr models.Attribute, window int) (float64, error) {
	if window < 1 {
		return 0, fmt.Errorf("window %d: %w", window, models.ErrOutOfRange)
	}

	values := make([]float64, 0, len(series))
	for _, record := range sortedByYear(series) {
		if f, ok := record.Figures(c); ok {
			values = append(values, f.Value(attr))
		}
	}

	if window > len(values) {
		return 0, fmt.Errorf("%s %s: window %d over %d years: %w", c, attr, window, len(values), models.ErrInsufficientHistory)
	}

	var sum float64
	for _, v := range values[len(values)-window:] {
		sum += v
	}
	return sum / float64(window), nil
}

// Through returns the records up to and including the given crop year.
func Through(series []models.CropYearRecord, year string) []models.CropYearRecord {
	out := make([]models.CropYearRecord, 0, len(series))
	for _, record := range series {
		if record.Year <= year {
			out = append(out, record)
		}
	}
	return out
}

// Yield returns production / area, in the ratio of the inputs' units.
func Yield(figures models.CropFigures) (float64, error) {
	if figures.Area == 0 {
		return 0, models.ErrDivisionUndefined
	}
	return figures.Production / figures.Area, nil
}

// RunningTotal returns the cumulative sums of values.
func RunningTotal(values []float64) []float64 {
	out := make([]float64, len(values))
	var acc float64
	for i, v := range values {
		acc += v
		out[i] = acc
	}
	return out
}

func figuresFor(series []models.CropYearRecord, c models.Commodity, year string) (models.CropFigures, error) {
	for _, record := range series {
		if record.Year != year {
			continue
		}
		f, ok := record.Figures(c)
		if !ok {
			return models.CropFigures{}, fmt.Errorf("%s in %s: %w", c, year, models.ErrNotFound)
		}
		return f, nil
	}
	return models.CropFigures{}, fmt.Errorf("crop year %s: %w", year, models.ErrNotFound)
}

// Crop year labels ("2019/20") sort chronologically as strings.
func sortedByYear(series []models.CropYearRecord) []models.CropYearRecord {
	out := append([]models.CropYearRecord(nil), series...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

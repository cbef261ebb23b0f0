package registry

import (
	"errors"
	"fmt"
	"math"

	"github.com/mamadbah2/cropstats/internal/service/derivation"
)

const (
	// Balance sheets are published rounded to 100 t.
	balanceTolerance = 0.5
	pctTolerance     = 0.5
	yieldTolerance   = 0.05
)

// ErrInvalidDataset marks a dataset that cannot be served.
var ErrInvalidDataset = errors.New("invalid dataset")

// Validate rejects structurally broken datasets and returns warnings for soft
// domain invariants a published table may legitimately violate by rounding.
func Validate(d *Dataset) ([]string, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrInvalidDataset)
	}

	var warnings []string

	if err := ascendingLabels("production", len(d.Production), func(i int) string { return d.Production[i].Year }); err != nil {
		return nil, err
	}
	for _, record := range d.Production {
		for c, f := range record.Crops {
			if f.Area < 0 || f.Production < 0 || f.Yield < 0 {
				return nil, fmt.Errorf("%w: negative figures for %s in %s", ErrInvalidDataset, c, record.Year)
			}
			if y, err := derivation.Yield(f); err == nil && math.Abs(y-f.Yield) > yieldTolerance {
				warnings = append(warnings, fmt.Sprintf("production %s %s: yield %.2f differs from production/area %.2f", record.Year, c, f.Yield, y))
			}
		}
	}

	for _, sheet := range d.BalanceSheets {
		rows := sheet.Rows
		if err := ascendingLabels("balance sheet "+string(sheet.Commodity), len(rows), func(i int) string { return rows[i].Year }); err != nil {
			return nil, err
		}
		for _, row := range rows {
			if gap := derivation.BalanceGap(row); math.Abs(gap) > balanceTolerance {
				warnings = append(warnings, fmt.Sprintf("balance sheet %s %s: ending stock %.3f, flows give %.3f", sheet.Commodity, row.Year, row.EndingStock, derivation.ExpectedEndingStock(row)))
			}
		}
		for _, b := range derivation.ContinuityBreaks(rows, balanceTolerance) {
			warnings = append(warnings, fmt.Sprintf("balance sheet %s %s: opening stock %.3f does not carry %s ending stock %.3f", sheet.Commodity, b.Year, b.OpeningStock, b.PreviousYear, b.PriorEndingStock))
		}
	}

	for _, series := range d.Surveys {
		if err := series.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
		}
	}

	gaps, err := consecutiveMonths("exports", len(d.MonthlyExports), func(i int) (int, int) {
		return d.MonthlyExports[i].Year, d.MonthlyExports[i].Month
	})
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, gaps...)
	for _, row := range d.MonthlyExports {
		if row.Destination == nil {
			continue
		}
		if total := row.Volume(row.Destination.Commodity); row.Destination.Volume > total {
			return nil, fmt.Errorf("%w: %d-%02d %s to %s %.1f exceeds total %.1f", ErrInvalidDataset, row.Year, row.Month, row.Destination.Commodity, row.Destination.Country, row.Destination.Volume, total)
		}
	}

	gaps, err = consecutiveMonths("prices", len(d.Prices), func(i int) (int, int) {
		return d.Prices[i].Year, d.Prices[i].Month
	})
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, gaps...)
	for _, row := range d.Prices {
		for c, byLocation := range row.Quotes {
			for location, v := range byLocation {
				if v < 0 {
					return nil, fmt.Errorf("%w: negative %s price at %s in %d-%02d", ErrInvalidDataset, c, location, row.Year, row.Month)
				}
			}
		}
	}

	for _, set := range d.StateShares {
		var sum float64
		for _, row := range set.Rows {
			sum += row.Pct
		}
		if math.Abs(sum-100) > pctTolerance {
			warnings = append(warnings, fmt.Sprintf("state shares %s %s: pct sums to %.1f", set.Commodity, set.CropYear, sum))
		}
	}

	return warnings, nil
}

func ascendingLabels(name string, n int, label func(int) string) error {
	for i := 1; i < n; i++ {
		if label(i) <= label(i-1) {
			return fmt.Errorf("%w: %s years not strictly ascending at %s", ErrInvalidDataset, name, label(i))
		}
	}
	return nil
}

// consecutiveMonths rejects months outside 1..12 and rows that repeat or go
// back in time. Skipped months only warn: a source may miss a release.
func consecutiveMonths(name string, n int, at func(int) (year, month int)) ([]string, error) {
	var warnings []string
	prev := -1
	for i := 0; i < n; i++ {
		year, month := at(i)
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("%w: %s month %d in %d", ErrInvalidDataset, name, month, year)
		}
		key := year*12 + month - 1
		if prev >= 0 && key <= prev {
			return nil, fmt.Errorf("%w: %s months not strictly ascending at %d-%02d", ErrInvalidDataset, name, year, month)
		}
		if prev >= 0 && key > prev+1 {
			warnings = append(warnings, fmt.Sprintf("%s: %d month(s) missing before %d-%02d", name, key-prev-1, year, month))
		}
		prev = key
	}
	return warnings, nil
}

package registry

import (
	"fmt"

	"github.com/mamadbah2/cropstats/internal/domain/models"
)

// BalanceSheet is the supply and demand table of one commodity, oldest year first.
type BalanceSheet struct {
	Commodity models.Commodity         `json:"commodity" bson:"commodity"`
	Rows      []models.BalanceSheetRow `json:"rows" bson:"rows"`
}

// DestinationSet is the by-country breakdown of one commodity's exports in a calendar year.
type DestinationSet struct {
	Commodity models.Commodity              `json:"commodity" bson:"commodity"`
	Year      int                           `json:"year" bson:"year"`
	Rows      []models.ExportDestinationRow `json:"rows" bson:"rows"`
}

// PortSet is the by-port breakdown of a calendar year's exports.
type PortSet struct {
	Year int                   `json:"year" bson:"year"`
	Rows []models.PortShareRow `json:"rows" bson:"rows"`
}

// StateShareSet is the by-state breakdown of one commodity in a crop year.
type StateShareSet struct {
	Commodity models.Commodity       `json:"commodity" bson:"commodity"`
	CropYear  string                 `json:"cropYear" bson:"crop_year"`
	Rows      []models.StateShareRow `json:"rows" bson:"rows"`
}

// Dataset bundles every statistics table the dashboard and the API serve.
// A Dataset is never mutated once handed to a Registry; lookups return the
// stored slices and callers must treat them as read-only.
type Dataset struct {
	Edition        string                    `json:"edition" bson:"edition"`
	Note           string                    `json:"note,omitempty" bson:"note,omitempty"`
	Production     []models.CropYearRecord   `json:"production" bson:"production"`
	BalanceSheets  []BalanceSheet            `json:"balanceSheets" bson:"balance_sheets"`
	Surveys        []models.SurveySeries     `json:"surveys" bson:"surveys"`
	MonthlyExports []models.MonthlyExportRow `json:"monthlyExports" bson:"monthly_exports"`
	Destinations   []DestinationSet          `json:"destinations" bson:"destinations"`
	Ports          []PortSet                 `json:"ports" bson:"ports"`
	StateShares    []StateShareSet           `json:"stateShares" bson:"state_shares"`
	Prices         []models.MonthlyPriceRow  `json:"prices" bson:"prices"`
}

// CropYear returns one record of the historical production series.
func (d *Dataset) CropYear(year string) (models.CropYearRecord, error) {
	for _, record := range d.Production {
		if record.Year == year {
			return record, nil
		}
	}
	return models.CropYearRecord{}, fmt.Errorf("production %s: %w", year, models.ErrNotFound)
}

// ProductionFor returns the crop years that carry the commodity, oldest first.
func (d *Dataset) ProductionFor(c models.Commodity) ([]models.CropYearRecord, error) {
	var out []models.CropYearRecord
	for _, record := range d.Production {
		if _, ok := record.Figures(c); ok {
			out = append(out, record)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("production of %s: %w", c, models.ErrNotFound)
	}
	return out, nil
}

// BalanceSheet returns the full table of a commodity.
func (d *Dataset) BalanceSheet(c models.Commodity) ([]models.BalanceSheetRow, error) {
	for _, sheet := range d.BalanceSheets {
		if sheet.Commodity == c {
			return sheet.Rows, nil
		}
	}
	return nil, fmt.Errorf("balance sheet of %s: %w", c, models.ErrNotFound)
}

// BalanceRow returns one crop year of a commodity's table.
func (d *Dataset) BalanceRow(c models.Commodity, year string) (models.BalanceSheetRow, error) {
	rows, err := d.BalanceSheet(c)
	if err != nil {
		return models.BalanceSheetRow{}, err
	}
	for _, row := range rows {
		if row.Year == year {
			return row, nil
		}
	}
	return models.BalanceSheetRow{}, fmt.Errorf("balance sheet of %s in %s: %w", c, year, models.ErrNotFound)
}

// SurveySeries returns the releases of one crop year.
func (d *Dataset) SurveySeries(cropYear string) (models.SurveySeries, error) {
	for _, series := range d.Surveys {
		if series.CropYear == cropYear {
			return series, nil
		}
	}
	return models.SurveySeries{}, fmt.Errorf("surveys of %s: %w", cropYear, models.ErrNotFound)
}

// LatestSurveySeries returns the most recent crop year with survey releases.
func (d *Dataset) LatestSurveySeries() (models.SurveySeries, error) {
	if len(d.Surveys) == 0 {
		return models.SurveySeries{}, fmt.Errorf("surveys: %w", models.ErrNotFound)
	}
	latest := d.Surveys[0]
	for _, series := range d.Surveys[1:] {
		if series.CropYear > latest.CropYear {
			latest = series
		}
	}
	return latest, nil
}

// ExportsIn returns a calendar year's shipment rows, January first.
func (d *Dataset) ExportsIn(year int) ([]models.MonthlyExportRow, error) {
	var out []models.MonthlyExportRow
	for _, row := range d.MonthlyExports {
		if row.Year == year {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("monthly exports of %d: %w", year, models.ErrNotFound)
	}
	return out, nil
}

// ExportDestinations returns the by-country breakdown, largest buyer first.
func (d *Dataset) ExportDestinations(c models.Commodity, year int) ([]models.ExportDestinationRow, error) {
	for _, set := range d.Destinations {
		if set.Commodity == c && set.Year == year {
			return set.Rows, nil
		}
	}
	return nil, fmt.Errorf("destinations of %s in %d: %w", c, year, models.ErrNotFound)
}

// ExportPorts returns the by-port breakdown of a calendar year.
func (d *Dataset) ExportPorts(year int) ([]models.PortShareRow, error) {
	for _, set := range d.Ports {
		if set.Year == year {
			return set.Rows, nil
		}
	}
	return nil, fmt.Errorf("ports in %d: %w", year, models.ErrNotFound)
}

// MonthlyPrices returns a calendar year's quotes, January first.
func (d *Dataset) MonthlyPrices(year int) ([]models.MonthlyPriceRow, error) {
	var out []models.MonthlyPriceRow
	for _, row := range d.Prices {
		if row.Year == year {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("prices of %d: %w", year, models.ErrNotFound)
	}
	return out, nil
}

// StateSharesIn returns the by-state breakdown of a commodity in a crop year.
func (d *Dataset) StateSharesIn(c models.Commodity, cropYear string) ([]models.StateShareRow, error) {
	for _, set := range d.StateShares {
		if set.Commodity == c && set.CropYear == cropYear {
			return set.Rows, nil
		}
	}
	return nil, fmt.Errorf("state shares of %s in %s: %w", c, cropYear, models.ErrNotFound)
}

// LatestStateShares returns the most recent by-state breakdown of a commodity.
func (d *Dataset) LatestStateShares(c models.Commodity) (StateShareSet, error) {
	var (
		latest StateShareSet
		found  bool
	)
	for _, set := range d.StateShares {
		if set.Commodity != c {
			continue
		}
		if !found || set.CropYear > latest.CropYear {
			latest, found = set, true
		}
	}
	if !found {
		return StateShareSet{}, fmt.Errorf("state shares of %s: %w", c, models.ErrNotFound)
	}
	return latest, nil
}

// LatestCropYear returns the newest crop year of the production series.
func (d *Dataset) LatestCropYear() (string, error) {
	if len(d.Production) == 0 {
		return "", fmt.Errorf("production: %w", models.ErrNotFound)
	}
	return d.Production[len(d.Production)-1].Year, nil
}

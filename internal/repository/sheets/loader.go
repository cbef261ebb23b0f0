package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
)

// Loader reads the statistics workbook into a Dataset.
type Loader struct {
	repo   Repository
	logger *zap.Logger
}

// NewLoader builds a Loader over the given repository.
func NewLoader(repo Repository, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{repo: repo, logger: logger}
}

func (l *Loader) Name() string { return "sheets" }

// Load reads every tab and decodes it.
func (l *Loader) Load(ctx context.Context) (*registry.Dataset, error) {
	tables := make(map[string]*table, len(columns))
	for _, tab := range Tabs() {
		values, err := l.repo.ReadRange(ctx, tabRange(tab))
		if err != nil {
			return nil, err
		}
		t, err := newTable(tab, values)
		if err != nil {
			return nil, err
		}
		tables[tab] = t
	}

	ds, err := decode(tables)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("workbook decoded",
		zap.Int("production_years", len(ds.Production)),
		zap.Int("export_months", len(ds.MonthlyExports)),
		zap.Int("price_months", len(ds.Prices)),
	)
	return ds, nil
}

// Decode turns raw tab values, keyed by tab name, into a Dataset.
func Decode(values map[string][][]interface{}) (*registry.Dataset, error) {
	tables := make(map[string]*table, len(columns))
	for _, tab := range Tabs() {
		t, err := newTable(tab, values[tab])
		if err != nil {
			return nil, err
		}
		tables[tab] = t
	}
	return decode(tables)
}

func decode(tables map[string]*table) (*registry.Dataset, error) {
	ds := &registry.Dataset{}

	steps := []struct {
		tab string
		fn  func(*table, *registry.Dataset) error
	}{
		{TabMeta, decodeMeta},
		{TabProduction, decodeProduction},
		{TabBalance, decodeBalance},
		{TabSurveys, decodeSurveys},
		{TabExports, decodeExports},
		{TabDestinations, decodeDestinations},
		{TabPorts, decodePorts},
		{TabStates, decodeStates},
		{TabPrices, decodePrices},
	}
	for _, step := range steps {
		if err := step.fn(tables[step.tab], ds); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func decodeMeta(t *table, ds *registry.Dataset) error {
	return t.each(func(row []interface{}) error {
		switch key := t.cell(row, "key"); key {
		case "edition":
			ds.Edition = t.cell(row, "value")
		case "note":
			ds.Note = t.cell(row, "value")
		default:
			return fmt.Errorf("unknown key %q", key)
		}
		return nil
	})
}

func decodeProduction(t *table, ds *registry.Dataset) error {
	byYear := map[string]int{}
	return t.each(func(row []interface{}) error {
		year := t.cell(row, "year")
		var f models.CropFigures
		var err error
		if f.Area, err = t.floatCell(row, "area"); err != nil {
			return err
		}
		if f.Production, err = t.floatCell(row, "production"); err != nil {
			return err
		}
		if f.Yield, err = t.floatCell(row, "yield"); err != nil {
			return err
		}
		projection, err := t.boolCell(row, "projection")
		if err != nil {
			return err
		}

		i, ok := byYear[year]
		if !ok {
			i = len(ds.Production)
			byYear[year] = i
			ds.Production = append(ds.Production, models.CropYearRecord{Year: year, Crops: map[models.Commodity]models.CropFigures{}})
		}
		record := &ds.Production[i]
		record.Crops[models.Commodity(t.cell(row, "commodity"))] = f
		record.IsProjection = record.IsProjection || projection
		return nil
	})
}

func decodeBalance(t *table, ds *registry.Dataset) error {
	byCommodity := map[models.Commodity]int{}
	return t.each(func(row []interface{}) error {
		r := models.BalanceSheetRow{Year: t.cell(row, "year")}
		fields := []struct {
			col string
			dst *float64
		}{
			{"opening_stock", &r.OpeningStock},
			{"production", &r.Production},
			{"imports", &r.Imports},
			{"consumption", &r.Consumption},
			{"exports", &r.Exports},
			{"ending_stock", &r.EndingStock},
		}
		for _, f := range fields {
			v, err := t.floatCell(row, f.col)
			if err != nil {
				return err
			}
			*f.dst = v
		}
		projection, err := t.boolCell(row, "projection")
		if err != nil {
			return err
		}
		r.IsProjection = projection

		c := models.Commodity(t.cell(row, "commodity"))
		i, ok := byCommodity[c]
		if !ok {
			i = len(ds.BalanceSheets)
			byCommodity[c] = i
			ds.BalanceSheets = append(ds.BalanceSheets, registry.BalanceSheet{Commodity: c})
		}
		ds.BalanceSheets[i].Rows = append(ds.BalanceSheets[i].Rows, r)
		return nil
	})
}

func decodeSurveys(t *table, ds *registry.Dataset) error {
	byCropYear := map[string]int{}
	return t.each(func(row []interface{}) error {
		cropYear := t.cell(row, "crop_year")
		ordinal, err := t.intCell(row, "survey")
		if err != nil {
			return err
		}
		totalGrains, err := t.optionalFloat(row, "total_grains")
		if err != nil {
			return err
		}

		i, ok := byCropYear[cropYear]
		if !ok {
			i = len(ds.Surveys)
			byCropYear[cropYear] = i
			ds.Surveys = append(ds.Surveys, models.SurveySeries{CropYear: cropYear})
		}
		series := &ds.Surveys[i]

		n := len(series.Rows)
		if n == 0 || series.Rows[n-1].Ordinal != ordinal {
			series.Rows = append(series.Rows, models.SurveyRow{
				Ordinal:     ordinal,
				Label:       t.cell(row, "label"),
				Date:        t.cell(row, "date"),
				State:       models.SurveyState(t.cell(row, "state")),
				TotalGrains: totalGrains,
			})
			n++
		}

		c := t.cell(row, "commodity")
		if c == "" {
			return nil
		}
		estimate, err := t.floatCell(row, "estimate")
		if err != nil {
			return err
		}
		survey := &series.Rows[n-1]
		if survey.Estimates == nil {
			survey.Estimates = map[models.Commodity]float64{}
		}
		survey.Estimates[models.Commodity(c)] = estimate
		return nil
	})
}

type monthKey struct{ year, month int }

func decodeExports(t *table, ds *registry.Dataset) error {
	byMonth := map[monthKey]int{}
	return t.each(func(row []interface{}) error {
		var key monthKey
		var err error
		if key.year, err = t.intCell(row, "year"); err != nil {
			return err
		}
		if key.month, err = t.intCell(row, "month"); err != nil {
			return err
		}

		i, ok := byMonth[key]
		if !ok {
			partial, err := t.boolCell(row, "partial")
			if err != nil {
				return err
			}
			export := models.MonthlyExportRow{
				Year:      key.year,
				Month:     key.month,
				Volumes:   map[models.Commodity]float64{},
				IsPartial: partial,
			}
			if country := t.cell(row, "dest_country"); country != "" {
				volume, err := t.floatCell(row, "dest_volume")
				if err != nil {
					return err
				}
				export.Destination = &models.DestinationShipment{
					Country:   country,
					Commodity: models.Commodity(t.cell(row, "dest_commodity")),
					Volume:    volume,
				}
			}
			i = len(ds.MonthlyExports)
			byMonth[key] = i
			ds.MonthlyExports = append(ds.MonthlyExports, export)
		}

		c := t.cell(row, "commodity")
		if c == "" {
			return nil
		}
		volume, err := t.floatCell(row, "volume")
		if err != nil {
			return err
		}
		ds.MonthlyExports[i].Volumes[models.Commodity(c)] = volume
		return nil
	})
}

func decodeDestinations(t *table, ds *registry.Dataset) error {
	type setKey struct {
		c    models.Commodity
		year int
	}
	bySet := map[setKey]int{}
	return t.each(func(row []interface{}) error {
		year, err := t.intCell(row, "year")
		if err != nil {
			return err
		}
		volume, err := t.floatCell(row, "volume")
		if err != nil {
			return err
		}

		key := setKey{c: models.Commodity(t.cell(row, "commodity")), year: year}
		i, ok := bySet[key]
		if !ok {
			i = len(ds.Destinations)
			bySet[key] = i
			ds.Destinations = append(ds.Destinations, registry.DestinationSet{Commodity: key.c, Year: year})
		}
		ds.Destinations[i].Rows = append(ds.Destinations[i].Rows, models.ExportDestinationRow{
			CountryCode: t.cell(row, "country_code"),
			Country:     t.cell(row, "country"),
			Volume:      volume,
		})
		return nil
	})
}

func decodePorts(t *table, ds *registry.Dataset) error {
	byYear := map[int]int{}
	return t.each(func(row []interface{}) error {
		year, err := t.intCell(row, "year")
		if err != nil {
			return err
		}
		volume, err := t.floatCell(row, "volume")
		if err != nil {
			return err
		}

		i, ok := byYear[year]
		if !ok {
			i = len(ds.Ports)
			byYear[year] = i
			ds.Ports = append(ds.Ports, registry.PortSet{Year: year})
		}
		set := &ds.Ports[i]

		port := t.cell(row, "port")
		n := len(set.Rows)
		if n == 0 || set.Rows[n-1].Port != port {
			set.Rows = append(set.Rows, models.PortShareRow{
				Port:    port,
				State:   t.cell(row, "state"),
				Volumes: map[models.Commodity]float64{},
			})
			n++
		}
		set.Rows[n-1].Volumes[models.Commodity(t.cell(row, "commodity"))] = volume
		return nil
	})
}

func decodeStates(t *table, ds *registry.Dataset) error {
	type setKey struct {
		c        models.Commodity
		cropYear string
	}
	bySet := map[setKey]int{}
	return t.each(func(row []interface{}) error {
		r := models.StateShareRow{State: t.cell(row, "state")}
		var err error
		if r.Production, err = t.floatCell(row, "production"); err != nil {
			return err
		}
		if r.Area, err = t.floatCell(row, "area"); err != nil {
			return err
		}
		if r.Pct, err = t.floatCell(row, "pct"); err != nil {
			return err
		}

		key := setKey{c: models.Commodity(t.cell(row, "commodity")), cropYear: t.cell(row, "crop_year")}
		i, ok := bySet[key]
		if !ok {
			i = len(ds.StateShares)
			bySet[key] = i
			ds.StateShares = append(ds.StateShares, registry.StateShareSet{Commodity: key.c, CropYear: key.cropYear})
		}
		ds.StateShares[i].Rows = append(ds.StateShares[i].Rows, r)
		return nil
	})
}

func decodePrices(t *table, ds *registry.Dataset) error {
	byMonth := map[monthKey]int{}
	return t.each(func(row []interface{}) error {
		var key monthKey
		var err error
		if key.year, err = t.intCell(row, "year"); err != nil {
			return err
		}
		if key.month, err = t.intCell(row, "month"); err != nil {
			return err
		}
		price, err := t.floatCell(row, "price")
		if err != nil {
			return err
		}

		i, ok := byMonth[key]
		if !ok {
			i = len(ds.Prices)
			byMonth[key] = i
			ds.Prices = append(ds.Prices, models.MonthlyPriceRow{Year: key.year, Month: key.month, Quotes: map[models.Commodity]map[string]float64{}})
		}
		quotes := ds.Prices[i].Quotes
		c := models.Commodity(t.cell(row, "commodity"))
		if quotes[c] == nil {
			quotes[c] = map[string]float64{}
		}
		quotes[c][t.cell(row, "location")] = price
		return nil
	})
}

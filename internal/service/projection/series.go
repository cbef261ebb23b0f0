package projection

import (
	"encoding/json"
	"sort"

	"github.com/mamadbah2/cropstats/internal/domain/models"
)

// SeriesRow is one crop year of a chart series. It marshals flat, with the
// commodities as top-level keys next to "year".
type SeriesRow struct {
	Year         string
	IsProjection bool
	Values       map[models.Commodity]float64
}

// MarshalJSON flattens Values into the row object.
func (r SeriesRow) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Values)+2)
	out["year"] = r.Year
	if r.IsProjection {
		out["isProjection"] = true
	}
	for c, v := range r.Values {
		out[string(c)] = v
	}
	return json.Marshal(out)
}

// Value returns one commodity's figure in the row.
func (r SeriesRow) Value(c models.Commodity) (float64, bool) {
	v, ok := r.Values[c]
	return v, ok
}

// Series is an axis-oriented view of one crop attribute.
type Series struct {
	Attribute   models.Attribute   `json:"attribute"`
	Unit        string             `json:"unit"`
	Commodities []models.Commodity `json:"commodities"`
	Rows        []SeriesRow        `json:"rows"`
}

// ProjectCropSeries turns the commodity-keyed production records into one row
// per crop year carrying only attr. Rows keep the order of records. A
// commodity missing from a year is left out of that row, never zero-filled.
// With no commodities given every commodity of every record is projected.
func ProjectCropSeries(records []models.CropYearRecord, attr models.Attribute, scale Scale, commodities ...models.Commodity) Series {
	series := Series{
		Attribute:   attr,
		Unit:        scale.Unit(attr),
		Commodities: commodities,
		Rows:        make([]SeriesRow, 0, len(records)),
	}
	if len(commodities) == 0 {
		series.Commodities = commoditiesOf(records)
	}

	for _, record := range records {
		row := SeriesRow{
			Year:         record.Year,
			IsProjection: record.IsProjection,
			Values:       make(map[models.Commodity]float64, len(series.Commodities)),
		}
		for _, c := range series.Commodities {
			if f, ok := record.Figures(c); ok {
				row.Values[c] = scale.Attribute(attr, f.Value(attr))
			}
		}
		series.Rows = append(series.Rows, row)
	}
	return series
}

// Years lists the crop years of the series in row order.
func (s Series) Years() []string {
	out := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		out[i] = row.Year
	}
	return out
}

func commoditiesOf(records []models.CropYearRecord) []models.Commodity {
	seen := make(map[models.Commodity]bool)
	var out []models.Commodity
	for _, record := range records {
		keys := make([]models.Commodity, 0, len(record.Crops))
		for c := range record.Crops {
			keys = append(keys, c)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, c := range keys {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// ProductionPoint is one crop year of a single commodity with all three
// attributes, optionally scoped to a state.
type ProductionPoint struct {
	CropYear     string  `json:"cropYear"`
	State        string  `json:"state,omitempty"`
	Area         float64 `json:"area"`
	Production   float64 `json:"production"`
	Yield        float64 `json:"yield"`
	IsProjection bool    `json:"isProjection"`
}

// ProjectProduction lists the commodity's national figures, skipping years
// that do not carry it.
func ProjectProduction(records []models.CropYearRecord, c models.Commodity, scale Scale) []ProductionPoint {
	out := make([]ProductionPoint, 0, len(records))
	for _, record := range records {
		f, ok := record.Figures(c)
		if !ok {
			continue
		}
		out = append(out, ProductionPoint{
			CropYear:     record.Year,
			Area:         scale.Convert(f.Area),
			Production:   scale.Convert(f.Production),
			Yield:        f.Yield,
			IsProjection: record.IsProjection,
		})
	}
	return out
}

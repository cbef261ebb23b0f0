package projection

import (
	"sort"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/service/derivation"
)

// ExportMonth is one month of a commodity's shipments.
type ExportMonth struct {
	Year           int      `json:"year"`
	Month          int      `json:"month"`
	MonthName      string   `json:"monthName"`
	Volume         float64  `json:"volume"`
	Cumulative     float64  `json:"cumulative"`
	Destination    string   `json:"destination,omitempty"`
	ToDestination  *float64 `json:"toDestination,omitempty"`
	DestinationPct *float64 `json:"destinationPct,omitempty"`
	IsPartial      bool     `json:"isPartial"`
}

// ProjectMonthlyExports lists the commodity's monthly volumes with the
// year-to-date running total. With withDestination the tracked buyer's volume
// and share are added where the month records them.
func ProjectMonthlyExports(rows []models.MonthlyExportRow, c models.Commodity, scale Scale, withDestination bool) []ExportMonth {
	cumulative := derivation.RunningTotal(derivation.ExportVolumes(rows, c))

	out := make([]ExportMonth, len(rows))
	for i, row := range rows {
		month := ExportMonth{
			Year:       row.Year,
			Month:      row.Month,
			MonthName:  models.MonthName(row.Month),
			Volume:     scale.Convert(row.Volume(c)),
			Cumulative: scale.Convert(cumulative[i]),
			IsPartial:  row.IsPartial,
		}
		if withDestination {
			if v, ok := row.DestinationVolume(c); ok {
				month.Destination = row.Destination.Country
				month.ToDestination = ptr(scale.Convert(v))
				month.DestinationPct = percentOrNil(derivation.ShareOfTotal(v, row.Volume(c)))
			}
		}
		out[i] = month
	}
	return out
}

// DestinationShare is one buyer's slice of a commodity's yearly exports.
type DestinationShare struct {
	CountryCode string   `json:"countryCode"`
	Country     string   `json:"countryName"`
	Volume      float64  `json:"volume"`
	SharePct    *float64 `json:"sharePct"`
}

// ProjectDestinations ranks buyers by volume and keeps the topN largest
// (all when topN < 1). Shares are computed against the total of every buyer,
// which is returned in the projected unit.
func ProjectDestinations(rows []models.ExportDestinationRow, scale Scale, topN int) ([]DestinationShare, float64) {
	ranked := append([]models.ExportDestinationRow(nil), rows...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Volume > ranked[j].Volume })

	var total float64
	for _, row := range ranked {
		total += row.Volume
	}

	ranked = rankedHead(ranked, topN)
	out := make([]DestinationShare, len(ranked))
	for i, row := range ranked {
		out[i] = DestinationShare{
			CountryCode: row.CountryCode,
			Country:     row.Country,
			Volume:      scale.Convert(row.Volume),
			SharePct:    percentOrNil(derivation.ShareOfTotal(row.Volume, total)),
		}
	}
	return out, scale.Convert(total)
}

func rankedHead[T any](items []T, n int) []T {
	if n < 1 || n >= len(items) {
		return items
	}
	return items[:n]
}

// PortShare is one port's slice of a commodity's yearly exports.
type PortShare struct {
	Port     string   `json:"portName"`
	State    string   `json:"state"`
	Volume   float64  `json:"volume"`
	SharePct *float64 `json:"sharePct"`
}

// ProjectPorts keeps the ports that shipped the commodity, in source order.
func ProjectPorts(rows []models.PortShareRow, c models.Commodity, scale Scale) []PortShare {
	var total float64
	for _, row := range rows {
		total += row.Volumes[c]
	}

	out := make([]PortShare, 0, len(rows))
	for _, row := range rows {
		v, ok := row.Volumes[c]
		if !ok {
			continue
		}
		out = append(out, PortShare{
			Port:     row.Port,
			State:    row.State,
			Volume:   scale.Convert(v),
			SharePct: percentOrNil(derivation.ShareOfTotal(v, total)),
		})
	}
	return out
}

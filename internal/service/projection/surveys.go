package projection

import (
	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/service/derivation"
)

// SurveyPoint is one release of a crop year's estimate series.
type SurveyPoint struct {
	Survey      int                          `json:"survey"`
	Label       string                       `json:"label"`
	Date        string                       `json:"date"`
	State       models.SurveyState           `json:"state"`
	Estimates   map[models.Commodity]float64 `json:"estimates,omitempty"`
	Revisions   map[models.Commodity]float64 `json:"revisions,omitempty"`
	TotalGrains *float64                     `json:"totalGrains"`
	IsCurrent   bool                         `json:"isCurrent"`
	IsFinal     bool                         `json:"isFinal"`
}

// ProjectSurveys keeps all twelve releases. Pending ones carry their state and
// schedule only. Revisions are the change from the previous release.
func ProjectSurveys(series models.SurveySeries, scale Scale) []SurveyPoint {
	out := make([]SurveyPoint, len(series.Rows))
	for i, row := range series.Rows {
		point := SurveyPoint{
			Survey:    row.Ordinal,
			Label:     row.Label,
			Date:      row.Date,
			State:     row.State,
			IsCurrent: row.IsCurrent(),
			IsFinal:   row.IsFinal(),
		}
		if row.IsReleased() {
			point.Estimates = make(map[models.Commodity]float64, len(row.Estimates))
			for c, v := range row.Estimates {
				point.Estimates[c] = scale.Convert(v)
				if rev, err := derivation.SurveyRevision(series.Rows, row.Ordinal, c); err == nil {
					if point.Revisions == nil {
						point.Revisions = make(map[models.Commodity]float64)
					}
					point.Revisions[c] = scale.Convert(rev)
				}
			}
			total := row.TotalGrains
			if total == 0 {
				// Sheets without the aggregate column fall back to the tracked crops.
				if sum, err := derivation.AggregateTotal(row); err == nil {
					total = sum
				}
			}
			point.TotalGrains = ptr(scale.Convert(total))
		}
		out[i] = point
	}
	return out
}

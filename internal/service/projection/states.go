package projection

import "github.com/mamadbah2/cropstats/internal/domain/models"

// StateShare is one state's slice of national output.
type StateShare struct {
	State      string  `json:"state"`
	Production float64 `json:"production"`
	Area       float64 `json:"area"`
	Pct        float64 `json:"pct"`
}

func ProjectStates(rows []models.StateShareRow, scale Scale) []StateShare {
	out := make([]StateShare, len(rows))
	for i, row := range rows {
		out[i] = StateShare{
			State:      row.State,
			Production: scale.Convert(row.Production),
			Area:       scale.Convert(row.Area),
			Pct:        row.Pct,
		}
	}
	return out
}

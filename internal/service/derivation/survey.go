package derivation

import (
	"fmt"

	"github.com/mamadbah2/cropstats/internal/domain/models"
)

// AggregateTotal sums the estimates of one released survey row. With no
// commodities given it sums every commodity the row tracks.
func AggregateTotal(row models.SurveyRow, commodities ...models.Commodity) (float64, error) {
	if !row.IsReleased() {
		return 0, fmt.Errorf("survey %d: %w", row.Ordinal, models.ErrNoData)
	}

	if len(commodities) == 0 {
		var total float64
		for _, v := range row.Estimates {
			total += v
		}
		return total, nil
	}

	var total float64
	for _, c := range commodities {
		v, err := row.Estimate(c)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// LatestReleased returns the highest-ordinal row that carries figures.
func LatestReleased(rows []models.SurveyRow) (models.SurveyRow, error) {
	found := -1
	for i, row := range rows {
		if !row.IsReleased() {
			continue
		}
		if found < 0 || row.Ordinal > rows[found].Ordinal {
			found = i
		}
	}
	if found < 0 {
		return models.SurveyRow{}, models.ErrNoData
	}
	return rows[found], nil
}

// SurveyRevision is the change of a commodity's estimate between a release and
// the previous one, in the estimate's unit.
func SurveyRevision(rows []models.SurveyRow, ordinal int, c models.Commodity) (float64, error) {
	if ordinal <= 1 || ordinal > len(rows) {
		return 0, fmt.Errorf("survey %d: %w", ordinal, models.ErrOutOfRange)
	}

	cur, err := rows[ordinal-1].Estimate(c)
	if err != nil {
		return 0, err
	}
	prev, err := rows[ordinal-2].Estimate(c)
	if err != nil {
		return 0, err
	}
	return cur - prev, nil
}

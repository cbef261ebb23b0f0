package models

import (
	"errors"
	"fmt"
)

// SurveysPerCropYear is the number of production estimates CONAB publishes for a crop year.
const SurveysPerCropYear = 12

// SurveyState tags the lifecycle position of one survey release.
type SurveyState string

const (
	SurveyPending  SurveyState = "pending"
	SurveyReleased SurveyState = "released"
	SurveyCurrent  SurveyState = "current"
	SurveyFinal    SurveyState = "final"
)

// SurveyRow is one production estimate release within a crop year.
type SurveyRow struct {
	Ordinal     int                   `json:"survey" bson:"ordinal"`
	Label       string                `json:"label" bson:"label"`
	Date        string                `json:"date" bson:"date"`
	State       SurveyState           `json:"state" bson:"state"`
	Estimates   map[Commodity]float64 `json:"estimates,omitempty" bson:"estimates,omitempty"` // thousand metric tons
	TotalGrains float64               `json:"totalGrains,omitempty" bson:"total_grains,omitempty"`
}

// IsReleased reports whether the row carries published figures.
func (r SurveyRow) IsReleased() bool {
	return r.State == SurveyReleased || r.State == SurveyCurrent || r.State == SurveyFinal
}

// IsCurrent reports whether the row is the latest release of an in-progress crop year.
func (r SurveyRow) IsCurrent() bool { return r.State == SurveyCurrent }

// IsFinal reports whether the row closes the crop year.
func (r SurveyRow) IsFinal() bool { return r.State == SurveyFinal }

// Estimate returns the commodity's estimate, or ErrNoData while the release is pending.
func (r SurveyRow) Estimate(c Commodity) (float64, error) {
	if !r.IsReleased() {
		return 0, fmt.Errorf("survey %d: %w", r.Ordinal, ErrNoData)
	}
	v, ok := r.Estimates[c]
	if !ok {
		return 0, fmt.Errorf("survey %d %s: %w", r.Ordinal, c, ErrNotFound)
	}
	return v, nil
}

// SurveySeries groups the twelve releases of one crop year, ordered by ordinal.
type SurveySeries struct {
	CropYear string      `json:"cropYear" bson:"crop_year"`
	Rows     []SurveyRow `json:"rows" bson:"rows"`
}

var errSurveyState = errors.New("invalid survey state")

// Validate checks the release state machine: ordinals ascend from 1, releases
// are contiguous, pending rows carry no figures, and at most one row is either
// current or final, never both.
func (s SurveySeries) Validate() error {
	if len(s.Rows) > SurveysPerCropYear {
		return fmt.Errorf("%s: %w: %d rows", s.CropYear, errSurveyState, len(s.Rows))
	}

	var current, final int
	pendingSeen := false

	for i, row := range s.Rows {
		if row.Ordinal != i+1 {
			return fmt.Errorf("%s: %w: ordinal %d at position %d", s.CropYear, errSurveyState, row.Ordinal, i+1)
		}

		switch row.State {
		case SurveyPending:
			pendingSeen = true
			if len(row.Estimates) > 0 {
				return fmt.Errorf("%s survey %d: %w: pending row carries estimates", s.CropYear, row.Ordinal, errSurveyState)
			}
			continue
		case SurveyReleased:
		case SurveyCurrent:
			current++
		case SurveyFinal:
			final++
			if row.Ordinal != SurveysPerCropYear {
				return fmt.Errorf("%s survey %d: %w: only the last release can be final", s.CropYear, row.Ordinal, errSurveyState)
			}
		default:
			return fmt.Errorf("%s survey %d: %w: %q", s.CropYear, row.Ordinal, errSurveyState, row.State)
		}

		if pendingSeen {
			return fmt.Errorf("%s survey %d: %w: release after a pending row", s.CropYear, row.Ordinal, errSurveyState)
		}
		if len(row.Estimates) == 0 {
			return fmt.Errorf("%s survey %d: %w: released row without estimates", s.CropYear, row.Ordinal, errSurveyState)
		}
	}

	switch {
	case current > 1:
		return fmt.Errorf("%s: %w: %d current rows", s.CropYear, errSurveyState, current)
	case final > 1:
		return fmt.Errorf("%s: %w: %d final rows", s.CropYear, errSurveyState, final)
	case current == 1 && final == 1:
		return fmt.Errorf("%s: %w: both current and final", s.CropYear, errSurveyState)
	}

	if current == 1 {
		last := lastReleasedIndex(s.Rows)
		if s.Rows[last].State != SurveyCurrent {
			return fmt.Errorf("%s: %w: current row is not the latest release", s.CropYear, errSurveyState)
		}
	}

	return nil
}

func lastReleasedIndex(rows []SurveyRow) int {
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].IsReleased() {
			return i
		}
	}
	return -1
}

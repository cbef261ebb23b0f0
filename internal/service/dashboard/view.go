package dashboard

import (
	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
	"github.com/mamadbah2/cropstats/internal/service/derivation"
	"github.com/mamadbah2/cropstats/internal/service/projection"
)

// Highlights are the derived figures shown above the production charts.
type Highlights struct {
	YoYProductionPct *float64 `json:"yoyProductionPct"`
	BaselineYear     string   `json:"baselineYear,omitempty"`
	RollingYield     *float64 `json:"rollingYield"`
	RollingWindow    int      `json:"rollingWindow"`
}

// View is the projection of one dashboard tab for a selection.
type View struct {
	Meta
	Tab          models.Tab                    `json:"tab"`
	Commodity    models.Commodity              `json:"commodity"`
	CropYear     string                        `json:"cropYear"`
	Cards        []Card                        `json:"cards,omitempty"`
	Highlights   *Highlights                   `json:"highlights,omitempty"`
	Production   *projection.Series            `json:"production,omitempty"`
	Area         *projection.Series            `json:"area,omitempty"`
	Yield        *projection.Series            `json:"yield,omitempty"`
	Balance      []projection.BalanceRow       `json:"balance,omitempty"`
	Surveys      []projection.SurveyPoint      `json:"surveys,omitempty"`
	LatestSurvey *projection.SurveyPoint       `json:"latestSurvey,omitempty"`
	Exports      []projection.ExportMonth      `json:"exports,omitempty"`
	Destinations []projection.DestinationShare `json:"destinations,omitempty"`
	Prices       []projection.PricePoint       `json:"prices,omitempty"`
	States       []projection.StateShare       `json:"states,omitempty"`
}

// View projects the tab the selection points at. An explicit crop year must
// exist in the production series; an empty one resolves to the latest year.
// Sections whose data is missing are left out of the view.
func (s *Service) View(sel models.Selection) (*View, error) {
	snap := s.registry.Current()
	ds := snap.Dataset
	scale := projection.Millions

	cropYear := sel.CropYear()
	if cropYear == "" {
		latest, err := ds.LatestCropYear()
		if err != nil {
			return nil, err
		}
		cropYear = latest
	} else if _, err := ds.CropYear(cropYear); err != nil {
		return nil, err
	}

	c := sel.Commodity()
	view := &View{
		Meta:      newMeta(snap, sourceSoyComplex, scale.VolumeUnit()),
		Tab:       sel.Tab(),
		Commodity: c,
		CropYear:  cropYear,
	}
	history := derivation.Through(ds.Production, cropYear)

	switch sel.Tab() {
	case models.TabOverview:
		view.Cards = s.cards(ds, scale)
		production := projection.ProjectCropSeries(history, models.AttrProduction, scale, summaryCommodities...)
		view.Production = &production
		view.Highlights = s.highlights(ds, history, c, cropYear)

	case models.TabProduction:
		production := projection.ProjectCropSeries(history, models.AttrProduction, scale, c)
		area := projection.ProjectCropSeries(history, models.AttrArea, scale, c)
		yield := projection.ProjectCropSeries(history, models.AttrYield, scale, c)
		view.Production, view.Area, view.Yield = &production, &area, &yield
		view.Highlights = s.highlights(ds, history, c, cropYear)

	case models.TabSurveys:
		series, err := ds.SurveySeries(cropYear)
		if err != nil && sel.CropYear() == "" {
			series, err = ds.LatestSurveySeries()
		}
		if err != nil {
			s.logger.Debug("view without surveys", zap.String("crop_year", cropYear), zap.Error(err))
			break
		}
		view.CropYear = series.CropYear
		view.Surveys = projection.ProjectSurveys(series, scale)
		if latest, err := derivation.LatestReleased(series.Rows); err == nil {
			point := view.Surveys[latest.Ordinal-1]
			view.LatestSurvey = &point
		}

	case models.TabExports:
		year := s.calendarYear(sel, latestExportYear(ds))
		if rows, err := ds.ExportsIn(year); err == nil && derivation.RecordsCommodity(rows, c) {
			view.Exports = projection.ProjectMonthlyExports(rows, c, scale, true)
		}
		if rows, err := ds.ExportDestinations(c, year); err == nil {
			view.Destinations, _ = projection.ProjectDestinations(rows, scale, DefaultTopN)
		}

	case models.TabPrices:
		year := s.calendarYear(sel, latestPriceYear(ds))
		if rows, err := ds.MonthlyPrices(year); err == nil {
			view.Prices = projection.ProjectPrices(rows, c, "")
		}

	case models.TabBalance:
		if rows, err := ds.BalanceSheet(c); err == nil {
			view.Balance = projection.ProjectBalance(rowsThrough(rows, cropYear), scale)
		}

	case models.TabStates:
		rows, err := ds.StateSharesIn(c, cropYear)
		if err != nil && sel.CropYear() == "" {
			var set registry.StateShareSet
			if set, err = ds.LatestStateShares(c); err == nil {
				rows, view.CropYear = set.Rows, set.CropYear
			}
		}
		if err == nil {
			view.States = projection.ProjectStates(rows, scale)
		}
	}

	return view, nil
}

func (s *Service) highlights(ds *registry.Dataset, history []models.CropYearRecord, c models.Commodity, cropYear string) *Highlights {
	h := &Highlights{RollingWindow: rollingWindow}

	if len(history) >= 2 {
		h.BaselineYear = history[len(history)-2].Year
		change, err := derivation.YearOverYearChange(ds.Production, c, cropYear, h.BaselineYear)
		h.YoYProductionPct = s.placeholder(c, "yoy production", change, err)
	}

	if avg, err := derivation.RollingAverage(history, c, models.AttrYield, rollingWindow); err == nil {
		h.RollingYield = ptr(projection.RoundYield(avg))
	} else {
		s.logger.Debug("rolling yield unavailable", zap.String("commodity", string(c)), zap.Error(err))
	}
	return h
}

// calendarYear picks the shipping year of the selected crop year. Without a
// pinned crop year, or when the label cannot be read, it returns latest.
func (s *Service) calendarYear(sel models.Selection, latest int) int {
	if sel.CropYear() == "" {
		return latest
	}
	year, err := harvestYear(sel.CropYear())
	if err != nil {
		s.logger.Debug("calendar year fallback", zap.String("crop_year", sel.CropYear()), zap.Error(err))
		return latest
	}
	return year
}

func rowsThrough(rows []models.BalanceSheetRow, cropYear string) []models.BalanceSheetRow {
	out := make([]models.BalanceSheetRow, 0, len(rows))
	for _, row := range rows {
		if row.Year <= cropYear {
			out = append(out, row)
		}
	}
	return projection.LastN(out, DefaultBalanceYears)
}

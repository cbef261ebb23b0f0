package dashboard

import (
	"errors"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
	"github.com/mamadbah2/cropstats/internal/service/derivation"
	"github.com/mamadbah2/cropstats/internal/service/projection"
)

var (
	summaryCommodities = []models.Commodity{models.Soybeans, models.Corn}
	dataSources        = []string{"CONAB", "SECEX/MDIC ComexStat"}
)

const summaryProductionYears = 11

// Card is the headline box of one commodity. Figures that cannot be derived
// are null so the client renders a placeholder.
type Card struct {
	Commodity        models.Commodity `json:"commodity"`
	Label            string           `json:"label"`
	CurrentYear      string           `json:"currentYear,omitempty"`
	Production       *float64         `json:"production"`
	Exports          *float64         `json:"exports"`
	EndingStock      *float64         `json:"endingStock"`
	YoYProductionPct *float64         `json:"yoyProductionPct"`
	YoYExportsPct    *float64         `json:"yoyExportsPct"`
}

// CardsResponse lists one card per API commodity.
type CardsResponse struct {
	Meta
	Data []Card `json:"data"`
}

// Cards builds the headline cards in million metric tons.
func (s *Service) Cards() *CardsResponse {
	snap := s.registry.Current()
	return &CardsResponse{
		Meta: newMeta(snap, sourceBalance, projection.UnitMillionTons),
		Data: s.cards(snap.Dataset, projection.Millions),
	}
}

func (s *Service) cards(ds *registry.Dataset, scale projection.Scale) []Card {
	commodities := models.APICommodities()
	out := make([]Card, 0, len(commodities))
	for _, c := range commodities {
		out = append(out, s.card(ds, c, scale))
	}
	return out
}

func (s *Service) card(ds *registry.Dataset, c models.Commodity, scale projection.Scale) Card {
	card := Card{Commodity: c, Label: c.Label()}

	rows, err := ds.BalanceSheet(c)
	if err != nil || len(rows) == 0 {
		s.logger.Debug("card without balance sheet", zap.String("commodity", string(c)), zap.Error(err))
		return card
	}

	cur := rows[len(rows)-1]
	card.CurrentYear = cur.Year
	card.Production = ptr(scale.Convert(cur.Production))
	card.Exports = ptr(scale.Convert(cur.Exports))
	card.EndingStock = ptr(scale.Convert(cur.EndingStock))

	if len(rows) < 2 {
		return card
	}
	prev := rows[len(rows)-2]

	change, err := derivation.YearOverYearChange(ds.Production, c, cur.Year, prev.Year)
	if errors.Is(err, models.ErrNotFound) {
		// processed products have no crop series; their table carries production
		change, err = derivation.PercentChange(cur.Production, prev.Production)
	}
	card.YoYProductionPct = s.placeholder(c, "yoy production", change, err)

	change, err = derivation.PercentChange(cur.Exports, prev.Exports)
	card.YoYExportsPct = s.placeholder(c, "yoy exports", change, err)

	return card
}

func (s *Service) placeholder(c models.Commodity, figure string, v float64, err error) *float64 {
	if err != nil {
		s.logger.Debug("figure unavailable", zap.String("commodity", string(c)), zap.String("figure", figure), zap.Error(err))
		return nil
	}
	return ptr(projection.Percent(v))
}

// SummaryResponse bundles every dataset the dashboard loads on start.
type SummaryResponse struct {
	Meta
	DataSources        []string                                                 `json:"dataSources"`
	Cards              []Card                                                   `json:"cards"`
	Production         map[models.Commodity][]projection.ProductionPoint        `json:"production"`
	BalanceSheets      map[models.Commodity][]projection.BalanceRow             `json:"balanceSheets"`
	MonthlyExports     map[models.Commodity]map[string][]projection.ExportMonth `json:"monthlyExports"`
	MonthlyPrices      map[models.Commodity]map[string][]projection.PricePoint  `json:"monthlyPrices"`
	ExportDestinations map[models.Commodity][]projection.DestinationShare       `json:"exportDestinations"`
	ExportPorts        []projection.PortShare                                   `json:"exportPorts"`
	SoyComplex         map[string][]projection.BalanceRow                       `json:"soyComplex"`
	Surveys            map[string][]projection.SurveyPoint                      `json:"surveys"`
}

// Summary assembles the whole dashboard from one snapshot. A section that
// cannot be built is left empty; the rest of the payload is still returned.
func (s *Service) Summary() *SummaryResponse {
	snap := s.registry.Current()
	ds := snap.Dataset
	scale := projection.Millions

	resp := &SummaryResponse{
		Meta:               newMeta(snap, sourceSoyComplex, scale.VolumeUnit()),
		DataSources:        dataSources,
		Cards:              s.cards(ds, scale),
		Production:         make(map[models.Commodity][]projection.ProductionPoint),
		BalanceSheets:      make(map[models.Commodity][]projection.BalanceRow),
		MonthlyExports:     make(map[models.Commodity]map[string][]projection.ExportMonth),
		MonthlyPrices:      make(map[models.Commodity]map[string][]projection.PricePoint),
		ExportDestinations: make(map[models.Commodity][]projection.DestinationShare),
		SoyComplex:         make(map[string][]projection.BalanceRow),
		Surveys:            make(map[string][]projection.SurveyPoint),
	}

	exportYears := distinctYears(len(ds.MonthlyExports), func(i int) int { return ds.MonthlyExports[i].Year })
	priceYears := distinctYears(len(ds.Prices), func(i int) int { return ds.Prices[i].Year })

	for _, c := range summaryCommodities {
		resp.Production[c] = projection.LastN(projection.ProjectProduction(ds.Production, c, scale), summaryProductionYears)

		if rows, err := ds.BalanceSheet(c); err == nil {
			resp.BalanceSheets[c] = projection.ProjectBalance(projection.LastN(rows, DefaultBalanceYears), scale)
		} else {
			s.logger.Debug("summary without balance sheet", zap.String("commodity", string(c)), zap.Error(err))
		}

		resp.MonthlyExports[c] = make(map[string][]projection.ExportMonth, len(exportYears))
		for _, year := range exportYears {
			rows, _ := ds.ExportsIn(year)
			resp.MonthlyExports[c][strconv.Itoa(year)] = projection.ProjectMonthlyExports(rows, c, scale, true)
		}

		resp.MonthlyPrices[c] = make(map[string][]projection.PricePoint, len(priceYears))
		for _, year := range priceYears {
			rows, _ := ds.MonthlyPrices(year)
			resp.MonthlyPrices[c][strconv.Itoa(year)] = projection.ProjectPrices(rows, c, "")
		}

		if rows, err := ds.ExportDestinations(c, latestDestinationYear(ds, c)); err == nil {
			resp.ExportDestinations[c], _ = projection.ProjectDestinations(rows, scale, DefaultTopN)
		}
	}

	if rows, err := ds.ExportPorts(latestPortYear(ds)); err == nil {
		resp.ExportPorts = projection.ProjectPorts(rows, models.Soybeans, scale)
	}

	// The soy complex tables are published in thousand tons and stay that way.
	if complex, err := soyComplex(snap, projection.Raw); err == nil {
		resp.SoyComplex["soja_graos"] = complex.Soybeans
		resp.SoyComplex["farelo"] = complex.Meal
		resp.SoyComplex["oleo"] = complex.Oil
	} else {
		s.logger.Debug("summary without soy complex", zap.Error(err))
	}

	for _, series := range ds.Surveys {
		resp.Surveys[series.CropYear] = projection.ProjectSurveys(series, scale)
	}

	return resp
}

func distinctYears(n int, year func(int) int) []int {
	seen := make(map[int]bool)
	var out []int
	for i := 0; i < n; i++ {
		if y := year(i); !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	sort.Ints(out)
	return out
}

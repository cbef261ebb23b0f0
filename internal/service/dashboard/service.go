// Package dashboard answers the data API endpoints and the dashboard views.
// Responses share one envelope and are always built from a single registry
// snapshot.
package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
	"github.com/mamadbah2/cropstats/internal/service/derivation"
	"github.com/mamadbah2/cropstats/internal/service/projection"
)

const (
	sourceBalance    = "CONAB"
	sourceSoyComplex = "CONAB e Secex"
	sourceTrade      = "SECEX/MDIC ComexStat"
	sourceProduction = "CONAB SerieHistoricaGraos"
	sourcePrices     = "CONAB PrecosMensalUF"

	DefaultBalanceYears    = 6
	MaxBalanceYears        = 20
	DefaultProductionYears = 10
	MaxProductionYears     = 50
	DefaultTopN            = 10
	MaxTopN                = 50

	rollingWindow = 5
)

// SnapshotSource hands out the dataset generation in service.
type SnapshotSource interface {
	Current() *registry.Snapshot
}

// Service answers the data API and the dashboard views from the registry.
// Each call works on a single snapshot, so a concurrent refresh never mixes
// two datasets in one response.
type Service struct {
	registry SnapshotSource
	logger   *zap.Logger
}

// NewService wires a new dashboard service instance.
func NewService(reg SnapshotSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{registry: reg, logger: logger}
}

// Meta is the envelope every response carries.
type Meta struct {
	Success     bool      `json:"success"`
	Source      string    `json:"source"`
	Note        string    `json:"note,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Edition     string    `json:"edition"`
	Version     uint64    `json:"version"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func newMeta(snap *registry.Snapshot, source, unit string) Meta {
	return Meta{
		Success:     true,
		Source:      source,
		Note:        snap.Dataset.Note,
		Unit:        unit,
		Edition:     snap.Dataset.Edition,
		Version:     snap.Version,
		LastUpdated: snap.LoadedAt,
	}
}

// BalanceSheetResponse is the supply and demand table of one commodity.
type BalanceSheetResponse struct {
	Meta
	Commodity models.Commodity        `json:"commodity"`
	Data      []projection.BalanceRow `json:"data"`
}

// BalanceSheet returns the last years crop years of a commodity's table.
// years == 0 selects the default window.
func (s *Service) BalanceSheet(c models.Commodity, years int, scale projection.Scale) (*BalanceSheetResponse, error) {
	years, err := window(years, DefaultBalanceYears, MaxBalanceYears)
	if err != nil {
		return nil, err
	}

	snap := s.registry.Current()
	rows, err := snap.Dataset.BalanceSheet(c)
	if err != nil {
		return nil, err
	}

	return &BalanceSheetResponse{
		Meta:      newMeta(snap, sourceBalance, scale.VolumeUnit()),
		Commodity: c,
		Data:      projection.ProjectBalance(projection.LastN(rows, years), scale),
	}, nil
}

// SoyComplexResponse carries the grain, meal and oil tables side by side.
type SoyComplexResponse struct {
	Meta
	Soybeans []projection.BalanceRow `json:"soja_graos"`
	Meal     []projection.BalanceRow `json:"farelo"`
	Oil      []projection.BalanceRow `json:"oleo"`
}

// SoyComplex returns the three soy complex tables over the crop years the meal
// and oil tables cover.
func (s *Service) SoyComplex(scale projection.Scale) (*SoyComplexResponse, error) {
	snap := s.registry.Current()
	return soyComplex(snap, scale)
}

func soyComplex(snap *registry.Snapshot, scale projection.Scale) (*SoyComplexResponse, error) {
	ds := snap.Dataset
	grain, err := ds.BalanceSheet(models.Soybeans)
	if err != nil {
		return nil, err
	}
	meal, err := ds.BalanceSheet(models.SoyMeal)
	if err != nil {
		return nil, err
	}
	oil, err := ds.BalanceSheet(models.SoyOil)
	if err != nil {
		return nil, err
	}

	n := len(meal)
	if len(oil) > n {
		n = len(oil)
	}

	return &SoyComplexResponse{
		Meta:     newMeta(snap, sourceSoyComplex, scale.VolumeUnit()),
		Soybeans: projection.ProjectBalance(projection.LastN(grain, n), scale),
		Meal:     projection.ProjectBalance(meal, scale),
		Oil:      projection.ProjectBalance(oil, scale),
	}, nil
}

// ProductionResponse is the historical production of one commodity.
type ProductionResponse struct {
	Meta
	Commodity models.Commodity             `json:"commodity"`
	State     string                       `json:"state,omitempty"`
	AreaUnit  string                       `json:"areaUnit"`
	YieldUnit string                       `json:"yieldUnit"`
	Data      []projection.ProductionPoint `json:"data"`
}

// Production returns the last years crop years of a commodity, nationally or
// for one state when state is set.
func (s *Service) Production(c models.Commodity, years int, state string, scale projection.Scale) (*ProductionResponse, error) {
	years, err := window(years, DefaultProductionYears, MaxProductionYears)
	if err != nil {
		return nil, err
	}

	snap := s.registry.Current()
	ds := snap.Dataset

	var points []projection.ProductionPoint
	if state == "" {
		points = projection.ProjectProduction(ds.Production, c, scale)
	} else {
		points = stateProduction(ds, c, state, scale)
	}
	if len(points) == 0 {
		if state != "" {
			return nil, fmt.Errorf("production of %s in %s: %w", c, state, models.ErrNotFound)
		}
		return nil, fmt.Errorf("production of %s: %w", c, models.ErrNotFound)
	}

	return &ProductionResponse{
		Meta:      newMeta(snap, sourceProduction, scale.VolumeUnit()),
		Commodity: c,
		State:     state,
		AreaUnit:  scale.AreaUnit(),
		YieldUnit: projection.UnitYield,
		Data:      projection.LastN(points, years),
	}, nil
}

// SeriesResponse is one crop attribute across every year on record.
type SeriesResponse struct {
	Meta
	Data projection.Series `json:"data"`
}

// CropSeries projects attr for every commodity of the production history.
func (s *Service) CropSeries(attr models.Attribute, scale projection.Scale) *SeriesResponse {
	snap := s.registry.Current()
	series := projection.ProjectCropSeries(snap.Dataset.Production, attr, scale)
	return &SeriesResponse{
		Meta: newMeta(snap, sourceProduction, series.Unit),
		Data: series,
	}
}

// MonthlyExportsResponse is one calendar year of a commodity's shipments.
type MonthlyExportsResponse struct {
	Meta
	Commodity           models.Commodity         `json:"commodity"`
	NCMCode             string                   `json:"ncmCode"`
	Year                int                      `json:"year"`
	Data                []projection.ExportMonth `json:"data"`
	YTDTotal            float64                  `json:"ytdTotal"`
	YTDToDestination    *float64                 `json:"ytdToDestination,omitempty"`
	DestinationSharePct *float64                 `json:"destinationSharePct,omitempty"`
}

// MonthlyExports returns a commodity's monthly volumes in year (0 for the
// latest year on record). includeDestination adds the tracked buyer.
func (s *Service) MonthlyExports(c models.Commodity, year int, includeDestination bool, scale projection.Scale) (*MonthlyExportsResponse, error) {
	snap := s.registry.Current()
	ds := snap.Dataset

	if year == 0 {
		if year = latestExportYear(ds); year == 0 {
			return nil, fmt.Errorf("monthly exports of %s: %w", c, models.ErrNotFound)
		}
	}
	rows, err := ds.ExportsIn(year)
	if err != nil {
		return nil, err
	}
	if !derivation.RecordsCommodity(rows, c) {
		return nil, fmt.Errorf("monthly exports of %s in %d: %w", c, year, models.ErrNotFound)
	}

	resp := &MonthlyExportsResponse{
		Meta:      newMeta(snap, sourceTrade, scale.VolumeUnit()),
		Commodity: c,
		NCMCode:   c.NCMCode(),
		Year:      year,
		Data:      projection.ProjectMonthlyExports(rows, c, scale, includeDestination),
		YTDTotal:  scale.Convert(derivation.SumExports(rows, c)),
	}
	if includeDestination {
		if share, err := derivation.DestinationShare(rows, c); err == nil && derivation.SumDestination(rows, c) > 0 {
			resp.YTDToDestination = ptr(scale.Convert(derivation.SumDestination(rows, c)))
			resp.DestinationSharePct = ptr(projection.Percent(share))
		}
	}
	return resp, nil
}

// DestinationsResponse ranks a commodity's buyers.
type DestinationsResponse struct {
	Meta
	Commodity models.Commodity              `json:"commodity"`
	Year      int                           `json:"year"`
	Total     float64                       `json:"total"`
	Data      []projection.DestinationShare `json:"data"`
}

// ExportsByDestination returns the topN buyers of year (0 for the latest).
func (s *Service) ExportsByDestination(c models.Commodity, year, topN int, scale projection.Scale) (*DestinationsResponse, error) {
	topN, err := window(topN, DefaultTopN, MaxTopN)
	if err != nil {
		return nil, err
	}

	snap := s.registry.Current()
	if year == 0 {
		if year = latestDestinationYear(snap.Dataset, c); year == 0 {
			return nil, fmt.Errorf("destinations of %s: %w", c, models.ErrNotFound)
		}
	}
	rows, err := snap.Dataset.ExportDestinations(c, year)
	if err != nil {
		return nil, err
	}

	data, total := projection.ProjectDestinations(rows, scale, topN)
	return &DestinationsResponse{
		Meta:      newMeta(snap, sourceTrade, scale.VolumeUnit()),
		Commodity: c,
		Year:      year,
		Total:     total,
		Data:      data,
	}, nil
}

// PortsResponse splits a commodity's shipments by port of loading.
type PortsResponse struct {
	Meta
	Commodity models.Commodity       `json:"commodity"`
	Year      int                    `json:"year"`
	Data      []projection.PortShare `json:"data"`
}

// ExportsByPort returns the port breakdown of year (0 for the latest).
func (s *Service) ExportsByPort(c models.Commodity, year int, scale projection.Scale) (*PortsResponse, error) {
	snap := s.registry.Current()
	if year == 0 {
		if year = latestPortYear(snap.Dataset); year == 0 {
			return nil, fmt.Errorf("ports shipping %s: %w", c, models.ErrNotFound)
		}
	}
	rows, err := snap.Dataset.ExportPorts(year)
	if err != nil {
		return nil, err
	}

	data := projection.ProjectPorts(rows, c, scale)
	if len(data) == 0 {
		return nil, fmt.Errorf("ports shipping %s in %d: %w", c, year, models.ErrNotFound)
	}
	return &PortsResponse{
		Meta:      newMeta(snap, sourceTrade, scale.VolumeUnit()),
		Commodity: c,
		Year:      year,
		Data:      data,
	}, nil
}

// PricesResponse lists monthly quotes.
type PricesResponse struct {
	Meta
	Commodity models.Commodity        `json:"commodity"`
	Year      int                     `json:"year"`
	Location  string                  `json:"location,omitempty"`
	Data      []projection.PricePoint `json:"data"`
}

// Prices returns a commodity's quotes in year (0 for the latest), at one
// location or at all of them.
func (s *Service) Prices(c models.Commodity, year int, location string) (*PricesResponse, error) {
	snap := s.registry.Current()
	if year == 0 {
		if year = latestPriceYear(snap.Dataset); year == 0 {
			return nil, fmt.Errorf("%s prices: %w", c, models.ErrNotFound)
		}
	}
	rows, err := snap.Dataset.MonthlyPrices(year)
	if err != nil {
		return nil, err
	}

	data := projection.ProjectPrices(rows, c, location)
	if len(data) == 0 {
		if location != "" {
			return nil, fmt.Errorf("%s prices at %s in %d: %w", c, location, year, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s prices in %d: %w", c, year, models.ErrNotFound)
	}
	return &PricesResponse{
		Meta:      newMeta(snap, sourcePrices, projection.UnitPrice),
		Commodity: c,
		Year:      year,
		Location:  location,
		Data:      data,
	}, nil
}

func window(n, def, max int) (int, error) {
	if n == 0 {
		return def, nil
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("%w: %d outside 1..%d", models.ErrInvalidArgument, n, max)
	}
	return n, nil
}

func stateProduction(ds *registry.Dataset, c models.Commodity, state string, scale projection.Scale) []projection.ProductionPoint {
	var out []projection.ProductionPoint
	for _, record := range ds.Production {
		rows, err := ds.StateSharesIn(c, record.Year)
		if err != nil {
			continue
		}
		for _, row := range rows {
			if row.State != state {
				continue
			}
			point := projection.ProductionPoint{
				CropYear:     record.Year,
				State:        row.State,
				Area:         scale.Convert(row.Area),
				Production:   scale.Convert(row.Production),
				IsProjection: record.IsProjection,
			}
			if y, err := derivation.Yield(models.CropFigures{Area: row.Area, Production: row.Production}); err == nil {
				point.Yield = projection.RoundYield(y)
			}
			out = append(out, point)
		}
	}
	return out
}

func latestExportYear(ds *registry.Dataset) int {
	var year int
	for _, row := range ds.MonthlyExports {
		if row.Year > year {
			year = row.Year
		}
	}
	return year
}

func latestDestinationYear(ds *registry.Dataset, c models.Commodity) int {
	var year int
	for _, set := range ds.Destinations {
		if set.Commodity == c && set.Year > year {
			year = set.Year
		}
	}
	return year
}

func latestPortYear(ds *registry.Dataset) int {
	var year int
	for _, set := range ds.Ports {
		if set.Year > year {
			year = set.Year
		}
	}
	return year
}

func latestPriceYear(ds *registry.Dataset) int {
	var year int
	for _, row := range ds.Prices {
		if row.Year > year {
			year = row.Year
		}
	}
	return year
}

// harvestYear maps a crop year label to the calendar year its harvest is
// shipped and priced in: "2024/25" -> 2025.
func harvestYear(cropYear string) (int, error) {
	if len(cropYear) < 4 {
		return 0, fmt.Errorf("%w: crop year %q", models.ErrInvalidArgument, cropYear)
	}
	start, err := strconv.Atoi(cropYear[:4])
	if err != nil {
		return 0, fmt.Errorf("%w: crop year %q", models.ErrInvalidArgument, cropYear)
	}
	return start + 1, nil
}

func ptr(v float64) *float64 { return &v }

package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/repository/fixtures"
	"github.com/mamadbah2/cropstats/internal/service/projection"
)

func TestScaleConvert(t *testing.T) {
	assert.Equal(t, 171480.0, projection.Raw.Convert(171480))
	assert.Equal(t, 171.48, projection.Millions.Convert(171480))
	assert.Equal(t, 0.316, projection.Millions.Convert(315.6))
	assert.Equal(t, -0.52, projection.Millions.Convert(-520))

	assert.Equal(t, projection.UnitThousandTons, projection.Raw.VolumeUnit())
	assert.Equal(t, projection.UnitMillionTons, projection.Millions.Unit(models.AttrProduction))
	assert.Equal(t, projection.Raw, projection.ParseScale("raw"))
	assert.Equal(t, projection.Millions, projection.ParseScale(""))
}

func TestProjectBalance(t *testing.T) {
	rows, err := fixtures.Dataset().BalanceSheet(models.Soybeans)
	require.NoError(t, err)

	out := projection.ProjectBalance(rows, projection.Millions)
	require.Len(t, out, len(rows))

	row := out[4]
	assert.Equal(t, "2024/25", row.Year)
	assert.Equal(t, 7.23, row.OpeningStock)
	assert.Equal(t, 179.68, row.TotalSupply)
	assert.Equal(t, 10.73, row.EndingStock)
	assert.True(t, out[5].IsProjection)
}

func TestProjectMonthlyExports(t *testing.T) {
	rows, err := fixtures.Dataset().ExportsIn(2025)
	require.NoError(t, err)

	months := projection.ProjectMonthlyExports(rows, models.Soybeans, projection.Millions, true)
	require.Len(t, months, 11)

	assert.Equal(t, "Jan", months[0].MonthName)
	assert.Equal(t, 1.6, months[0].Volume)
	assert.Equal(t, 119.8, months[10].Cumulative)
	require.NotNil(t, months[2].ToDestination)
	assert.Equal(t, 12.1, *months[2].ToDestination)
	assert.Equal(t, "China", months[2].Destination)
	require.NotNil(t, months[2].DestinationPct)
	assert.InDelta(t, 73.78, *months[2].DestinationPct, 1e-9)

	plain := projection.ProjectMonthlyExports(rows, models.Soybeans, projection.Millions, false)
	assert.Nil(t, plain[2].ToDestination)

	corn := projection.ProjectMonthlyExports(rows, models.Corn, projection.Raw, true)
	assert.Nil(t, corn[0].ToDestination)
	assert.Equal(t, 3800.0, corn[0].Volume)
}

func TestProjectDestinations(t *testing.T) {
	rows, err := fixtures.Dataset().ExportDestinations(models.Soybeans, 2025)
	require.NoError(t, err)

	top, total := projection.ProjectDestinations(rows, projection.Millions, 3)
	require.Len(t, top, 3)
	assert.Equal(t, 107.8, total)
	assert.Equal(t, "China", top[0].Country)
	assert.Equal(t, "Others", top[1].Country)
	require.NotNil(t, top[0].SharePct)
	assert.InDelta(t, 76.53, *top[0].SharePct, 1e-9)

	all, _ := projection.ProjectDestinations(rows, projection.Raw, 0)
	assert.Len(t, all, len(rows))
}

func TestProjectPorts(t *testing.T) {
	rows, err := fixtures.Dataset().ExportPorts(2025)
	require.NoError(t, err)

	ports := projection.ProjectPorts(rows, models.Soybeans, projection.Millions)
	require.Len(t, ports, 7)
	assert.Equal(t, "Santos", ports[0].Port)
	assert.Equal(t, 34.5, ports[0].Volume)
	require.NotNil(t, ports[0].SharePct)
	assert.InDelta(t, 32.03, *ports[0].SharePct, 1e-9)

	assert.Empty(t, projection.ProjectPorts(rows, models.Wheat, projection.Millions))
}

func TestProjectPrices(t *testing.T) {
	rows, err := fixtures.Dataset().MonthlyPrices(2024)
	require.NoError(t, err)

	mt := projection.ProjectPrices(rows, models.Soybeans, "MT")
	require.Len(t, mt, 12)
	assert.Nil(t, mt[0].MoMChangePct)
	require.NotNil(t, mt[1].MoMChangePct)
	assert.InDelta(t, -3.08, *mt[1].MoMChangePct, 1e-9)
	assert.Equal(t, 130.0, mt[0].Price)

	all := projection.ProjectPrices(rows, models.Soybeans, "")
	require.Len(t, all, 36)
	assert.Equal(t, "MT", all[0].Location)
	assert.Equal(t, "PR", all[12].Location)
	assert.Equal(t, "Paranaguá", all[24].Location)

	assert.Empty(t, projection.ProjectPrices(rows, models.Wheat, "MT"))
}

func TestProjectSurveys(t *testing.T) {
	series, err := fixtures.Dataset().SurveySeries("2025/26")
	require.NoError(t, err)

	points := projection.ProjectSurveys(series, projection.Millions)
	require.Len(t, points, models.SurveysPerCropYear)

	assert.Nil(t, points[0].Revisions)
	dec := points[2]
	assert.True(t, dec.IsCurrent)
	assert.Equal(t, models.SurveyCurrent, dec.State)
	assert.Equal(t, 177.12, dec.Estimates[models.Soybeans])
	assert.Equal(t, -0.52, dec.Revisions[models.Soybeans])
	require.NotNil(t, dec.TotalGrains)
	assert.Equal(t, 354.5, *dec.TotalGrains)

	pending := points[3]
	assert.Equal(t, models.SurveyPending, pending.State)
	assert.Nil(t, pending.Estimates)
	assert.Nil(t, pending.TotalGrains)
}

func TestProjectSurveysWithoutAggregate(t *testing.T) {
	series, err := fixtures.Dataset().SurveySeries("2025/26")
	require.NoError(t, err)
	series.Rows = append([]models.SurveyRow(nil), series.Rows...)
	series.Rows[0].TotalGrains = 0

	points := projection.ProjectSurveys(series, projection.Millions)
	require.NotNil(t, points[0].TotalGrains)
	assert.Equal(t, 316.23, *points[0].TotalGrains)
	require.NotNil(t, points[1].TotalGrains)
	assert.Equal(t, 355.1, *points[1].TotalGrains)
}

func TestProjectStates(t *testing.T) {
	set, err := fixtures.Dataset().LatestStateShares(models.Soybeans)
	require.NoError(t, err)

	states := projection.ProjectStates(set.Rows, projection.Millions)
	require.Len(t, states, len(set.Rows))
	assert.Equal(t, "MT", states[0].State)
	assert.Equal(t, 50.9, states[0].Production)
	assert.Equal(t, 29.7, states[0].Pct)
}

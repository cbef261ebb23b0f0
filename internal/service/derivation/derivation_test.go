package derivation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/repository/fixtures"
	"github.com/mamadbah2/cropstats/internal/service/derivation"
)

func TestYearOverYearChange_Corn(t *testing.T) {
	ds := fixtures.Dataset()

	change, err := derivation.YearOverYearChange(ds.Production, models.Corn, "2023/24", "2022/23")
	require.NoError(t, err)
	assert.InDelta(t, (115.7-131.9)/131.9*100, change, 1e-9)
	assert.InDelta(t, -12.28, change, 0.01)
}

func TestYearOverYearChange_MissingYearOrCommodity(t *testing.T) {
	ds := fixtures.Dataset()

	_, err := derivation.YearOverYearChange(ds.Production, models.Corn, "2030/31", "2024/25")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = derivation.YearOverYearChange(ds.Production, models.Wheat, "2021/22", "2020/21")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestYearOverYearChange_ZeroBaseline(t *testing.T) {
	series := []models.CropYearRecord{
		{Year: "2023/24", Crops: map[models.Commodity]models.CropFigures{models.Wheat: {Production: 0}}},
		{Year: "2024/25", Crops: map[models.Commodity]models.CropFigures{models.Wheat: {Production: 7900}}},
	}

	_, err := derivation.YearOverYearChange(series, models.Wheat, "2024/25", "2023/24")
	assert.ErrorIs(t, err, models.ErrDivisionUndefined)
}

func TestRollingAverage_SoybeanYield(t *testing.T) {
	ds := fixtures.Dataset()
	window := derivation.Through(ds.Production, "2023/24")

	avg, err := derivation.RollingAverage(window, models.Soybeans, models.AttrYield, 5)
	require.NoError(t, err)
	assert.InDelta(t, 3.364, avg, 1e-9)
}

func TestRollingAverage_UsesMostRecentEntriesInYearOrder(t *testing.T) {
	series := []models.CropYearRecord{
		{Year: "2024/25", Crops: map[models.Commodity]models.CropFigures{models.Corn: {Yield: 6}}},
		{Year: "2022/23", Crops: map[models.Commodity]models.CropFigures{models.Corn: {Yield: 2}}},
		{Year: "2023/24", Crops: map[models.Commodity]models.CropFigures{models.Corn: {Yield: 4}}},
	}

	avg, err := derivation.RollingAverage(series, models.Corn, models.AttrYield, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, avg, 1e-12)
}

func TestRollingAverage_Errors(t *testing.T) {
	ds := fixtures.Dataset()

	_, err := derivation.RollingAverage(ds.Production, models.Wheat, models.AttrYield, 6)
	assert.ErrorIs(t, err, models.ErrInsufficientHistory)

	_, err = derivation.RollingAverage(ds.Production, models.Soybeans, models.AttrYield, 0)
	assert.ErrorIs(t, err, models.ErrOutOfRange)
}

func TestShareOfTotal(t *testing.T) {
	share, err := derivation.ShareOfTotal(25, 200)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, share, 1e-12)

	_, err = derivation.ShareOfTotal(1, 0)
	assert.ErrorIs(t, err, models.ErrDivisionUndefined)
}

func TestYield(t *testing.T) {
	y, err := derivation.Yield(models.CropFigures{Area: 47400, Production: 171500})
	require.NoError(t, err)
	assert.InDelta(t, 3.618, y, 0.001)

	_, err = derivation.Yield(models.CropFigures{Production: 10})
	assert.ErrorIs(t, err, models.ErrDivisionUndefined)
}

func TestRunningTotal(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 6}, derivation.RunningTotal([]float64{1, 2, 3}))
	assert.Empty(t, derivation.RunningTotal(nil))
}

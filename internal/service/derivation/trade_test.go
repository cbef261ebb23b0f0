package derivation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/repository/fixtures"
	"github.com/mamadbah2/cropstats/internal/service/derivation"
)

func TestChinaShareOfSoybeanExports2025(t *testing.T) {
	rows, err := fixtures.Dataset().ExportsIn(2025)
	require.NoError(t, err)

	assert.InDelta(t, 119800.0, derivation.SumExports(rows, models.Soybeans), 1e-9)
	assert.InDelta(t, 88700.0, derivation.SumDestination(rows, models.Soybeans), 1e-9)

	share, err := derivation.DestinationShare(rows, models.Soybeans)
	require.NoError(t, err)
	assert.InDelta(t, 88700.0/119800.0*100, share, 1e-9)
	assert.InDelta(t, 74.0, share, 0.05)
}

func TestDestinationVolumeNeverExceedsTotal(t *testing.T) {
	for _, row := range fixtures.Dataset().MonthlyExports {
		v, ok := row.DestinationVolume(models.Soybeans)
		require.True(t, ok)
		assert.LessOrEqual(t, v, row.Volume(models.Soybeans), "%d-%02d", row.Year, row.Month)
	}
}

func TestDestinationShare_NoShipments(t *testing.T) {
	rows, err := fixtures.Dataset().ExportsIn(2025)
	require.NoError(t, err)

	_, err = derivation.DestinationShare(rows, models.Wheat)
	assert.ErrorIs(t, err, models.ErrDivisionUndefined)
}

func TestMonthToMonthChange(t *testing.T) {
	rows, err := fixtures.Dataset().MonthlyPrices(2024)
	require.NoError(t, err)
	field := derivation.PriceField{Commodity: models.Soybeans, Location: "MT"}

	change, err := derivation.MonthToMonthChange(rows, field, 1)
	require.NoError(t, err)
	assert.InDelta(t, (126.0-130.0)/130.0*100, change, 1e-9)

	_, err = derivation.MonthToMonthChange(rows, field, 0)
	assert.ErrorIs(t, err, models.ErrOutOfRange)

	_, err = derivation.MonthToMonthChange(rows, field, len(rows))
	assert.ErrorIs(t, err, models.ErrOutOfRange)

	_, err = derivation.MonthToMonthChange(rows, derivation.PriceField{Commodity: models.Wheat, Location: "MT"}, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestExportVolumesRunningTotal(t *testing.T) {
	rows, err := fixtures.Dataset().ExportsIn(2025)
	require.NoError(t, err)

	cumulative := derivation.RunningTotal(derivation.ExportVolumes(rows, models.Soybeans))
	require.Len(t, cumulative, 11)
	assert.InDelta(t, 1600.0, cumulative[0], 1e-9)
	assert.InDelta(t, 119800.0, cumulative[len(cumulative)-1], 1e-9)
}

func TestRecordsCommodity(t *testing.T) {
	rows, err := fixtures.Dataset().ExportsIn(2025)
	require.NoError(t, err)

	assert.True(t, derivation.RecordsCommodity(rows, models.Soybeans))
	assert.True(t, derivation.RecordsCommodity(rows, models.SoyOil))
	assert.False(t, derivation.RecordsCommodity(rows, models.Wheat))
	assert.False(t, derivation.RecordsCommodity(nil, models.Soybeans))
}

package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/domain/models"
)

func TestCards(t *testing.T) {
	resp := newService(t).Cards()
	require.Len(t, resp.Data, len(models.APICommodities()))

	soy := resp.Data[0]
	assert.Equal(t, models.Soybeans, soy.Commodity)
	assert.Equal(t, "2025/26", soy.CurrentYear)
	require.NotNil(t, soy.Production)
	assert.Equal(t, 176.12, *soy.Production)
	require.NotNil(t, soy.YoYProductionPct)
	assert.Equal(t, 2.68, *soy.YoYProductionPct)
	require.NotNil(t, soy.YoYExportsPct)
	assert.Equal(t, 3.33, *soy.YoYExportsPct)

	meal := resp.Data[2]
	assert.Equal(t, models.SoyMeal, meal.Commodity)
	require.NotNil(t, meal.YoYProductionPct)
	assert.Equal(t, 5.85, *meal.YoYProductionPct)
}

func TestSummary(t *testing.T) {
	resp := newService(t).Summary()

	assert.True(t, resp.Success)
	assert.Len(t, resp.Cards, 5)
	assert.Len(t, resp.Production[models.Soybeans], 11)
	assert.Len(t, resp.BalanceSheets[models.Corn], 6)
	assert.Len(t, resp.MonthlyExports[models.Soybeans]["2024"], 12)
	assert.Len(t, resp.MonthlyExports[models.Soybeans]["2025"], 11)
	assert.Len(t, resp.MonthlyPrices[models.Corn]["2025"], 22)
	assert.Len(t, resp.ExportDestinations[models.Soybeans], 10)
	assert.Len(t, resp.ExportPorts, 7)
	assert.Len(t, resp.SoyComplex["farelo"], 2)
	assert.Len(t, resp.Surveys, 2)
	assert.Len(t, resp.Surveys["2025/26"], models.SurveysPerCropYear)
}

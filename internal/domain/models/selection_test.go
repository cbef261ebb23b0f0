package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/domain/models"
)

func TestNewSelection_Defaults(t *testing.T) {
	sel, err := models.NewSelection("", "", "")
	require.NoError(t, err)

	assert.Equal(t, models.TabOverview, sel.Tab())
	assert.Equal(t, models.Soybeans, sel.Commodity())
	assert.Empty(t, sel.CropYear())
}

func TestNewSelection_ParsesValues(t *testing.T) {
	sel, err := models.NewSelection("Balance", " CORN ", "2024/25")
	require.NoError(t, err)

	assert.Equal(t, models.TabBalance, sel.Tab())
	assert.Equal(t, models.Corn, sel.Commodity())
	assert.Equal(t, "2024/25", sel.CropYear())
}

func TestNewSelection_RejectsUnknownValues(t *testing.T) {
	_, err := models.NewSelection("weather", "", "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = models.NewSelection("", "cotton", "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestSelection_WithReturnsCopy(t *testing.T) {
	base := models.DefaultSelection()
	next := base.WithTab(models.TabPrices).WithCommodity(models.Wheat)

	assert.Equal(t, models.TabOverview, base.Tab())
	assert.Equal(t, models.Soybeans, base.Commodity())
	assert.Equal(t, models.TabPrices, next.Tab())
	assert.Equal(t, models.Wheat, next.Commodity())
}

func TestParseCommodity(t *testing.T) {
	c, err := models.ParseCommodity("soy_meal")
	require.NoError(t, err)
	assert.Equal(t, models.SoyMeal, c)
	assert.Equal(t, "2304", c.NCMCode())

	_, err = models.ParseCommodity(string(models.CornSafrinha))
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

package fixtures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/repository/fixtures"
)

func TestDatasetReturnsIndependentCopies(t *testing.T) {
	a := fixtures.Dataset()
	b := fixtures.Dataset()

	a.MonthlyExports[0].Volumes[models.Soybeans] = 0
	assert.NotZero(t, b.MonthlyExports[0].Volumes[models.Soybeans])
}

func TestLoader(t *testing.T) {
	var loader fixtures.Loader
	ds, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fixtures", loader.Name())
	assert.Equal(t, fixtures.Edition, ds.Edition)
	assert.Equal(t, fixtures.Note, ds.Note)
}

func TestSurveyStates(t *testing.T) {
	ds := fixtures.Dataset()
	for _, series := range ds.Surveys {
		require.NoError(t, series.Validate(), series.CropYear)
		assert.Len(t, series.Rows, models.SurveysPerCropYear)
	}
}

func TestLatestProductionIsProjection(t *testing.T) {
	ds := fixtures.Dataset()
	last := ds.Production[len(ds.Production)-1]
	assert.Equal(t, "2025/26", last.Year)
	assert.True(t, last.IsProjection)
	assert.False(t, ds.Production[len(ds.Production)-2].IsProjection)
}

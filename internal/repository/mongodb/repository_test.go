package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/repository/fixtures"
)

func snapshotBatch(t *testing.T, doc snapshotDocument) bson.D {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var out bson.D
	require.NoError(t, bson.Unmarshal(raw, &out))
	return out
}

func TestLoadSnapshot(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes the current document", func(mt *mtest.T) {
		repo := newRepository(mt.Client, "cropstats")
		doc := snapshotDocument{ID: currentSnapshotID, Dataset: fixtures.Dataset()}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "cropstats.snapshots", mtest.FirstBatch, snapshotBatch(t, doc)))

		ds, err := Loader{Repo: repo}.Load(mt.Context())
		require.NoError(mt, err)
		assert.Equal(mt, fixtures.Edition, ds.Edition)

		series, err := ds.SurveySeries("2025/26")
		require.NoError(mt, err)
		assert.Equal(mt, models.SurveyCurrent, series.Rows[2].State)
		assert.Equal(mt, fixtures.Dataset().BalanceSheets, ds.BalanceSheets)
	})

	mt.Run("missing document", func(mt *mtest.T) {
		repo := newRepository(mt.Client, "cropstats")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cropstats.snapshots", mtest.FirstBatch))

		_, err := repo.LoadSnapshot(mt.Context())
		assert.ErrorIs(mt, err, models.ErrNotFound)
	})
}

func TestSaveSnapshot(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upserts", func(mt *mtest.T) {
		repo := newRepository(mt.Client, "cropstats")
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(mt, repo.SaveSnapshot(mt.Context(), fixtures.Dataset()))
	})

	mt.Run("server error", func(mt *mtest.T) {
		repo := newRepository(mt.Client, "cropstats")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Message: "duplicate key"}))

		assert.Error(mt, repo.SaveSnapshot(mt.Context(), fixtures.Dataset()))
	})
}

func TestLoaderName(t *testing.T) {
	assert.Equal(t, "mongodb", Loader{}.Name())
}

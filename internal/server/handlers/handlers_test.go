package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/service/projection"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("balance 1999: %w", models.ErrNotFound), http.StatusNotFound},
		{models.ErrNoData, http.StatusNotFound},
		{fmt.Errorf("%w: years", models.ErrInvalidArgument), http.StatusBadRequest},
		{models.ErrOutOfRange, http.StatusBadRequest},
		{models.ErrInsufficientHistory, http.StatusBadRequest},
		{models.ErrUnauthorized, http.StatusUnauthorized},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusOf(tc.err), tc.err.Error())
	}
}

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestQueryParsing(t *testing.T) {
	c := testContext("/?years=5&top_n=&include_china=false&unit=raw")

	n, err := queryInt(c, "years")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = queryInt(c, "top_n")
	require.NoError(t, err)
	assert.Zero(t, n)

	b, err := queryBool(c, "include_china", true)
	require.NoError(t, err)
	assert.False(t, b)

	b, err = queryBool(c, "missing", true)
	require.NoError(t, err)
	assert.True(t, b)

	assert.Equal(t, projection.Raw, queryScale(c, projection.Millions))
	assert.Equal(t, projection.Millions, queryScale(testContext("/"), projection.Millions))

	_, err = queryInt(testContext("/?year=-1"), "year")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestStateParam(t *testing.T) {
	assert.Equal(t, "MT", stateParam(" mt "))
	assert.Equal(t, "Paranaguá", stateParam("Paranaguá"))
	assert.Equal(t, "", stateParam(""))
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, zap.NewNop(), errors.New("mongo: connection reset"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"internal error"}`, rec.Body.String())
}

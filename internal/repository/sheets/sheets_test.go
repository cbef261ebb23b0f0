package sheets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/registry"
	"github.com/mamadbah2/cropstats/internal/repository/fixtures"
)

type memoryRepo struct {
	tabs    map[string][][]interface{}
	readErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{tabs: map[string][][]interface{}{}}
}

func tabOf(sheetRange string) string {
	tab, _, _ := strings.Cut(sheetRange, "!")
	return tab
}

func (m *memoryRepo) ReadRange(_ context.Context, sheetRange string) ([][]interface{}, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.tabs[tabOf(sheetRange)], nil
}

func (m *memoryRepo) UpdateRange(_ context.Context, sheetRange string, values [][]interface{}) error {
	m.tabs[tabOf(sheetRange)] = values
	return nil
}

func (m *memoryRepo) ClearRange(_ context.Context, sheetRange string) error {
	delete(m.tabs, tabOf(sheetRange))
	return nil
}

func TestWriteThenLoad(t *testing.T) {
	repo := newMemoryRepo()
	ctx := context.Background()

	require.NoError(t, Write(ctx, repo, fixtures.Dataset()))
	assert.Len(t, repo.tabs, len(Tabs()))

	loader := NewLoader(repo, nil)
	assert.Equal(t, "sheets", loader.Name())

	ds, err := loader.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Dataset(), ds)

	_, err = registry.Validate(ds)
	assert.NoError(t, err)
}

func TestDecodeStringCells(t *testing.T) {
	values := map[string][][]interface{}{}
	for tab, rows := range Encode(fixtures.Dataset()) {
		values[tab] = rows[:1]
	}
	values[TabMeta] = append(values[TabMeta], []interface{}{"edition", "test"})
	// Columns out of order and numbers as formatted text.
	values[TabProduction] = [][]interface{}{
		{"commodity", "year", "yield", "production", "area", "projection"},
		{"soybeans", "2024/25", "3.62", "171480", "47300", "FALSE"},
		{"corn", "2024/25", "6.07", "139700", "23000"},
		{},
	}

	ds, err := Decode(values)
	require.NoError(t, err)
	assert.Equal(t, "test", ds.Edition)
	require.Len(t, ds.Production, 1)
	assert.Equal(t, 171480.0, ds.Production[0].Crops["soybeans"].Production)
	assert.Equal(t, 6.07, ds.Production[0].Crops["corn"].Yield)
	assert.False(t, ds.Production[0].IsProjection)
}

func TestDecodeErrors(t *testing.T) {
	base := func() map[string][][]interface{} {
		return Encode(fixtures.Dataset())
	}

	t.Run("missing column", func(t *testing.T) {
		values := base()
		values[TabPrices][0] = []interface{}{"year", "month", "commodity", "location"}
		_, err := Decode(values)
		assert.ErrorContains(t, err, `Prices: missing column "price"`)
	})

	t.Run("missing tab", func(t *testing.T) {
		values := base()
		delete(values, TabPorts)
		_, err := Decode(values)
		assert.ErrorContains(t, err, "Ports: missing header row")
	})

	t.Run("bad number names the row", func(t *testing.T) {
		values := base()
		values[TabBalance][3][2] = "n/a"
		_, err := Decode(values)
		assert.ErrorContains(t, err, "Balance row 4: opening_stock")
	})

	t.Run("unknown meta key", func(t *testing.T) {
		values := base()
		values[TabMeta] = append(values[TabMeta], []interface{}{"owner", "x"})
		_, err := Decode(values)
		assert.ErrorContains(t, err, `unknown key "owner"`)
	})
}

func TestLoadReadError(t *testing.T) {
	repo := newMemoryRepo()
	repo.readErr = errors.New("quota exceeded")

	_, err := NewLoader(repo, nil).Load(context.Background())
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestParseHelpers(t *testing.T) {
	n, err := parseInt("2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, n)

	n, err = parseInt("12.0")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = parseInt("")
	assert.Error(t, err)

	b, err := parseBool("TRUE")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = parseBool("maybe")
	assert.Error(t, err)
}

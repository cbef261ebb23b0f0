package sheets

import (
	"fmt"
	"strconv"
	"strings"
)

// Tabs of the statistics workbook. Every tab starts with a header row and
// columns are matched by header name, so they may appear in any order.
const (
	TabMeta         = "Meta"
	TabProduction   = "Production"
	TabBalance      = "Balance"
	TabSurveys      = "Surveys"
	TabExports      = "Exports"
	TabDestinations = "Destinations"
	TabPorts        = "Ports"
	TabStates       = "States"
	TabPrices       = "Prices"
)

var columns = map[string][]string{
	TabMeta:         {"key", "value"},
	TabProduction:   {"year", "commodity", "area", "production", "yield", "projection"},
	TabBalance:      {"commodity", "year", "opening_stock", "production", "imports", "consumption", "exports", "ending_stock", "projection"},
	TabSurveys:      {"crop_year", "survey", "label", "date", "state", "total_grains", "commodity", "estimate"},
	TabExports:      {"year", "month", "partial", "dest_country", "dest_commodity", "dest_volume", "commodity", "volume"},
	TabDestinations: {"commodity", "year", "country_code", "country", "volume"},
	TabPorts:        {"year", "port", "state", "commodity", "volume"},
	TabStates:       {"commodity", "crop_year", "state", "production", "area", "pct"},
	TabPrices:       {"year", "month", "commodity", "location", "price"},
}

// Tabs lists the workbook tabs in the order they are read and written.
func Tabs() []string {
	return []string{TabMeta, TabProduction, TabBalance, TabSurveys, TabExports, TabDestinations, TabPorts, TabStates, TabPrices}
}

func tabRange(tab string) string {
	return fmt.Sprintf("%s!A:Z", tab)
}

type table struct {
	tab   string
	index map[string]int
	rows  [][]interface{}
}

func newTable(tab string, values [][]interface{}) (*table, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: missing header row", tab)
	}

	index := make(map[string]int, len(values[0]))
	for i, h := range values[0] {
		index[strings.ToLower(strings.TrimSpace(fmt.Sprint(h)))] = i
	}
	for _, col := range columns[tab] {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", tab, col)
		}
	}

	return &table{tab: tab, index: index, rows: values[1:]}, nil
}

// cell returns the trimmed text of a column. Sheets drops trailing empty
// cells, so short rows read as blanks.
func (t *table) cell(row []interface{}, col string) string {
	i := t.index[col]
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

func (t *table) floatCell(row []interface{}, col string) (float64, error) {
	v, err := parseFloat(t.cell(row, col))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", col, err)
	}
	return v, nil
}

func (t *table) optionalFloat(row []interface{}, col string) (float64, error) {
	if t.cell(row, col) == "" {
		return 0, nil
	}
	return t.floatCell(row, col)
}

func (t *table) intCell(row []interface{}, col string) (int, error) {
	v, err := parseInt(t.cell(row, col))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", col, err)
	}
	return v, nil
}

func (t *table) boolCell(row []interface{}, col string) (bool, error) {
	v, err := parseBool(t.cell(row, col))
	if err != nil {
		return false, fmt.Errorf("%s: %w", col, err)
	}
	return v, nil
}

// each walks the data rows, skipping blank ones and tagging errors with the
// sheet row number.
func (t *table) each(fn func(row []interface{}) error) error {
	for i, row := range t.rows {
		if blank(row) {
			continue
		}
		if err := fn(row); err != nil {
			return fmt.Errorf("%s row %d: %w", t.tab, i+2, err)
		}
	}
	return nil
}

func blank(row []interface{}) bool {
	for _, v := range row {
		if v != nil && strings.TrimSpace(fmt.Sprint(v)) != "" {
			return false
		}
	}
	return true
}

func parseFloat(str string) (float64, error) {
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.ParseFloat(str, 64)
}

func parseInt(str string) (int, error) {
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	// Unformatted reads may hand integers back as floats.
	if v, err := strconv.ParseFloat(str, 64); err == nil && v == float64(int(v)) {
		return int(v), nil
	}
	return strconv.Atoi(str)
}

func parseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "", "false", "0", "no":
		return false, nil
	case "true", "1", "yes":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", str)
	}
}

package models

import (
	"fmt"
	"strings"
)

// Tab names one dashboard panel.
type Tab string

const (
	TabOverview   Tab = "overview"
	TabProduction Tab = "production"
	TabSurveys    Tab = "surveys"
	TabExports    Tab = "exports"
	TabPrices     Tab = "prices"
	TabBalance    Tab = "balance"
	TabStates     Tab = "states"
)

var tabs = []Tab{TabOverview, TabProduction, TabSurveys, TabExports, TabPrices, TabBalance, TabStates}

// ParseTab validates a tab name.
func ParseTab(value string) (Tab, error) {
	normalized := Tab(strings.ToLower(strings.TrimSpace(value)))
	for _, t := range tabs {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown tab %q", ErrInvalidArgument, value)
}

// Selection is what the dashboard is currently showing. It is a value: every
// change produces a new Selection and the previous one stays untouched.
type Selection struct {
	tab       Tab
	commodity Commodity
	cropYear  string
}

// DefaultSelection is the initial dashboard state. An empty crop year means
// the latest year available in the dataset.
func DefaultSelection() Selection {
	return Selection{tab: TabOverview, commodity: Soybeans}
}

// NewSelection builds a selection from raw query values; empty values keep the defaults.
func NewSelection(tab, commodity, cropYear string) (Selection, error) {
	sel := DefaultSelection()

	if strings.TrimSpace(tab) != "" {
		t, err := ParseTab(tab)
		if err != nil {
			return Selection{}, err
		}
		sel = sel.WithTab(t)
	}

	if strings.TrimSpace(commodity) != "" {
		c, err := ParseCommodity(commodity)
		if err != nil {
			return Selection{}, err
		}
		sel = sel.WithCommodity(c)
	}

	return sel.WithCropYear(strings.TrimSpace(cropYear)), nil
}

func (s Selection) Tab() Tab             { return s.tab }
func (s Selection) Commodity() Commodity { return s.commodity }
func (s Selection) CropYear() string     { return s.cropYear }

// WithTab returns a copy showing another tab.
func (s Selection) WithTab(t Tab) Selection {
	s.tab = t
	return s
}

// WithCommodity returns a copy focused on another commodity.
func (s Selection) WithCommodity(c Commodity) Selection {
	s.commodity = c
	return s
}

// WithCropYear returns a copy pinned to another crop year.
func (s Selection) WithCropYear(year string) Selection {
	s.cropYear = year
	return s
}

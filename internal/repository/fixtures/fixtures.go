// Package fixtures carries the built-in CONAB and SECEX tables (January 2026
// edition). Volumes are in thousand metric tons, areas in thousand hectares,
// yields in t/ha and prices in BRL per 60 kg bag.
package fixtures

import (
	"context"

	"github.com/mamadbah2/cropstats/internal/registry"
)

const (
	Edition = "CONAB/SECEX January 2026"
	Note    = "Estimativa em janeiro/2026. Estoque de passagem 31 de dezembro."
)

// Dataset builds a fresh copy of the built-in tables.
func Dataset() *registry.Dataset {
	return &registry.Dataset{
		Edition:        Edition,
		Note:           Note,
		Production:     production(),
		BalanceSheets:  balanceSheets(),
		Surveys:        surveys(),
		MonthlyExports: monthlyExports(),
		Destinations:   destinations(),
		Ports:          ports(),
		StateShares:    stateShares(),
		Prices:         prices(),
	}
}

// Loader serves the built-in tables. It is the default source and the
// fallback when a configured source fails at startup.
type Loader struct{}

func (Loader) Name() string { return "fixtures" }

func (Loader) Load(context.Context) (*registry.Dataset, error) {
	return Dataset(), nil
}

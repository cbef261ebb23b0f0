package sheets

import (
	"context"
	"maps"
	"slices"

	"github.com/mamadbah2/cropstats/internal/registry"
)

// Encode lays a Dataset out as tab values, header row first. Map-backed
// cells are written in key order so repeated encodes are identical.
func Encode(ds *registry.Dataset) map[string][][]interface{} {
	out := make(map[string][][]interface{}, len(columns))
	for _, tab := range Tabs() {
		header := make([]interface{}, 0, len(columns[tab]))
		for _, col := range columns[tab] {
			header = append(header, col)
		}
		out[tab] = [][]interface{}{header}
	}

	add := func(tab string, cells ...interface{}) {
		out[tab] = append(out[tab], cells)
	}

	add(TabMeta, "edition", ds.Edition)
	if ds.Note != "" {
		add(TabMeta, "note", ds.Note)
	}

	for _, record := range ds.Production {
		for _, c := range slices.Sorted(maps.Keys(record.Crops)) {
			f := record.Crops[c]
			add(TabProduction, record.Year, string(c), f.Area, f.Production, f.Yield, record.IsProjection)
		}
	}

	for _, sheet := range ds.BalanceSheets {
		for _, r := range sheet.Rows {
			add(TabBalance, string(sheet.Commodity), r.Year, r.OpeningStock, r.Production, r.Imports, r.Consumption, r.Exports, r.EndingStock, r.IsProjection)
		}
	}

	for _, series := range ds.Surveys {
		for _, r := range series.Rows {
			var total interface{} = ""
			if r.TotalGrains != 0 {
				total = r.TotalGrains
			}
			if len(r.Estimates) == 0 {
				add(TabSurveys, series.CropYear, r.Ordinal, r.Label, r.Date, string(r.State), total, "", "")
				continue
			}
			for _, c := range slices.Sorted(maps.Keys(r.Estimates)) {
				add(TabSurveys, series.CropYear, r.Ordinal, r.Label, r.Date, string(r.State), total, string(c), r.Estimates[c])
			}
		}
	}

	for _, r := range ds.MonthlyExports {
		var country, destCommodity, destVolume interface{} = "", "", ""
		if d := r.Destination; d != nil {
			country, destCommodity, destVolume = d.Country, string(d.Commodity), d.Volume
		}
		if len(r.Volumes) == 0 {
			add(TabExports, r.Year, r.Month, r.IsPartial, country, destCommodity, destVolume, "", "")
			continue
		}
		for _, c := range slices.Sorted(maps.Keys(r.Volumes)) {
			add(TabExports, r.Year, r.Month, r.IsPartial, country, destCommodity, destVolume, string(c), r.Volumes[c])
		}
	}

	for _, set := range ds.Destinations {
		for _, r := range set.Rows {
			add(TabDestinations, string(set.Commodity), set.Year, r.CountryCode, r.Country, r.Volume)
		}
	}

	for _, set := range ds.Ports {
		for _, r := range set.Rows {
			for _, c := range slices.Sorted(maps.Keys(r.Volumes)) {
				add(TabPorts, set.Year, r.Port, r.State, string(c), r.Volumes[c])
			}
		}
	}

	for _, set := range ds.StateShares {
		for _, r := range set.Rows {
			add(TabStates, string(set.Commodity), set.CropYear, r.State, r.Production, r.Area, r.Pct)
		}
	}

	for _, r := range ds.Prices {
		for _, c := range slices.Sorted(maps.Keys(r.Quotes)) {
			for _, location := range slices.Sorted(maps.Keys(r.Quotes[c])) {
				add(TabPrices, r.Year, r.Month, string(c), location, r.Quotes[c][location])
			}
		}
	}

	return out
}

// Write replaces every tab of the workbook with the encoded dataset.
func Write(ctx context.Context, repo Repository, ds *registry.Dataset) error {
	encoded := Encode(ds)
	for _, tab := range Tabs() {
		if err := repo.ClearRange(ctx, tabRange(tab)); err != nil {
			return err
		}
		if err := repo.UpdateRange(ctx, tab+"!A1", encoded[tab]); err != nil {
			return err
		}
	}
	return nil
}

package fixtures

import (
	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
)

type row = models.BalanceSheetRow

func balanceSheets() []registry.BalanceSheet {
	return []registry.BalanceSheet{
		{Commodity: models.Soybeans, Rows: []row{
			{Year: "2020/21", OpeningStock: 2500, Production: 135900, Imports: 400, Consumption: 48800, Exports: 86100, EndingStock: 3900},
			{Year: "2021/22", OpeningStock: 3900, Production: 125500, Imports: 300, Consumption: 50900, Exports: 78700, EndingStock: 100},
			{Year: "2022/23", OpeningStock: 100, Production: 154600, Imports: 200, Consumption: 53900, Exports: 98500, EndingStock: 2500},
			{Year: "2023/24", OpeningStock: 2500, Production: 147400, Imports: 300, Consumption: 55800, Exports: 87170, EndingStock: 7230},
			{Year: "2024/25", OpeningStock: 7230, Production: 171480, Imports: 970, Consumption: 60770, Exports: 108180, EndingStock: 10730},
			{Year: "2025/26", OpeningStock: 10730, Production: 176120, Imports: 500, Consumption: 64270, Exports: 111780, EndingStock: 11300, IsProjection: true},
		}},
		{Commodity: models.Corn, Rows: []row{
			{Year: "2020/21", OpeningStock: 11200, Production: 87100, Imports: 3100, Consumption: 71500, Exports: 20800, EndingStock: 9100},
			{Year: "2021/22", OpeningStock: 9100, Production: 113100, Imports: 1800, Consumption: 77000, Exports: 44700, EndingStock: 2300},
			{Year: "2022/23", OpeningStock: 2300, Production: 131900, Imports: 1600, Consumption: 83000, Exports: 52000, EndingStock: 800},
			{Year: "2023/24", OpeningStock: 800, Production: 115700, Imports: 1500, Consumption: 84500, Exports: 32500, EndingStock: 1000},
			{Year: "2024/25", OpeningStock: 1000, Production: 139700, Imports: 1200, Consumption: 92500, Exports: 40000, EndingStock: 9400},
			{Year: "2025/26", OpeningStock: 9400, Production: 138800, Imports: 1000, Consumption: 94500, Exports: 46500, EndingStock: 8200, IsProjection: true},
		}},
		{Commodity: models.SoyMeal, Rows: []row{
			{Year: "2024/25", OpeningStock: 3367, Production: 44044, Imports: 0, Consumption: 19500, Exports: 23300, EndingStock: 4611},
			{Year: "2025/26", OpeningStock: 4611, Production: 46620, Imports: 1, Consumption: 20300, Exports: 24696, EndingStock: 6236, IsProjection: true},
		}},
		{Commodity: models.SoyOil, Rows: []row{
			{Year: "2024/25", OpeningStock: 465, Production: 11426, Imports: 105, Consumption: 10318, Exports: 1362, EndingStock: 316},
			{Year: "2025/26", OpeningStock: 316, Production: 12155, Imports: 100, Consumption: 10811, Exports: 1400, EndingStock: 360, IsProjection: true},
		}},
		{Commodity: models.Wheat, Rows: []row{
			{Year: "2023/24", OpeningStock: 800, Production: 8100, Imports: 5500, Consumption: 12500, Exports: 300, EndingStock: 1600},
			{Year: "2024/25", OpeningStock: 1600, Production: 7900, Imports: 5800, Consumption: 12800, Exports: 200, EndingStock: 2300},
			{Year: "2025/26", OpeningStock: 2300, Production: 8500, Imports: 5500, Consumption: 13000, Exports: 300, EndingStock: 3000, IsProjection: true},
		}},
	}
}

package fixtures

import "github.com/mamadbah2/cropstats/internal/domain/models"

type crop = models.CropFigures

func production() []models.CropYearRecord {
	return []models.CropYearRecord{
		{Year: "2015/16", Crops: map[models.Commodity]crop{
			models.Soybeans: {Area: 33300, Production: 95400, Yield: 2.87},
			models.Corn:     {Area: 15900, Production: 64100, Yield: 4.03},
		}},
		{Year: "2016/17", Crops: map[models.Commodity]crop{
			models.Soybeans: {Area: 33900, Production: 114100, Yield: 3.36},
			models.Corn:     {Area: 17600, Production: 97800, Yield: 5.56},
		}},
		{Year: "2017/18", Crops: map[models.Commodity]crop{
			models.Soybeans: {Area: 35100, Production: 119300, Yield: 3.40},
			models.Corn:     {Area: 16600, Production: 80700, Yield: 4.86},
		}},
		{Year: "2018/19", Crops: map[models.Commodity]crop{
			models.Soybeans: {Area: 35900, Production: 115000, Yield: 3.21},
			models.Corn:     {Area: 17500, Production: 100000, Yield: 5.71},
		}},
		{Year: "2019/20", Crops: map[models.Commodity]crop{
			models.Soybeans: {Area: 36900, Production: 124800, Yield: 3.38},
			models.Corn:     {Area: 18500, Production: 102500, Yield: 5.54},
		}},
		{Year: "2020/21", Crops: map[models.Commodity]crop{
			models.Soybeans: {Area: 38500, Production: 135900, Yield: 3.53},
			models.Corn:     {Area: 19800, Production: 87100, Yield: 4.40},
		}},
		{Year: "2021/22", Crops: map[models.Commodity]crop{
			models.Soybeans: {Area: 41000, Production: 125500, Yield: 3.06},
			models.Corn:     {Area: 21400, Production: 113100, Yield: 5.29},
			models.Wheat:    {Area: 2740, Production: 7680, Yield: 2.80},
		}},
		{Year: "2022/23", Crops: map[models.Commodity]crop{
			models.Soybeans:     {Area: 43200, Production: 154600, Yield: 3.58},
			models.Corn:         {Area: 22000, Production: 131900, Yield: 5.99},
			models.CornSafrinha: {Area: 17200, Production: 102400, Yield: 5.95},
			models.Wheat:        {Area: 3090, Production: 10550, Yield: 3.41},
		}},
		{Year: "2023/24", Crops: map[models.Commodity]crop{
			models.Soybeans:     {Area: 45100, Production: 147400, Yield: 3.27},
			models.Corn:         {Area: 20700, Production: 115700, Yield: 5.59},
			models.CornSafrinha: {Area: 16600, Production: 90300, Yield: 5.44},
			models.Wheat:        {Area: 3470, Production: 8100, Yield: 2.33},
		}},
		{Year: "2024/25", Crops: map[models.Commodity]crop{
			models.Soybeans:     {Area: 47400, Production: 171500, Yield: 3.62},
			models.Corn:         {Area: 22200, Production: 139700, Yield: 6.29},
			models.CornSafrinha: {Area: 17500, Production: 112900, Yield: 6.45},
			models.Wheat:        {Area: 3060, Production: 7900, Yield: 2.58},
		}},
		{Year: "2025/26", IsProjection: true, Crops: map[models.Commodity]crop{
			models.Soybeans:     {Area: 48900, Production: 176100, Yield: 3.60},
			models.Corn:         {Area: 22700, Production: 138800, Yield: 6.12},
			models.CornSafrinha: {Area: 17800, Production: 108400, Yield: 6.09},
			models.Wheat:        {Area: 2700, Production: 8500, Yield: 3.15},
		}},
	}
}

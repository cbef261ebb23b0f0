package fixtures

import (
	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
)

const china = "China"

func shipment(year, month int, soybeans, corn, soyMeal, soyOil, toChina float64) models.MonthlyExportRow {
	return models.MonthlyExportRow{
		Year:  year,
		Month: month,
		Volumes: map[models.Commodity]float64{
			models.Soybeans: soybeans,
			models.Corn:     corn,
			models.SoyMeal:  soyMeal,
			models.SoyOil:   soyOil,
		},
		Destination: &models.DestinationShipment{Country: china, Commodity: models.Soybeans, Volume: toChina},
	}
}

func monthlyExports() []models.MonthlyExportRow {
	return []models.MonthlyExportRow{
		shipment(2024, 1, 1800, 3800, 1800, 100, 1300),
		shipment(2024, 2, 5200, 3200, 1900, 110, 3900),
		shipment(2024, 3, 12800, 1800, 2000, 120, 9600),
		shipment(2024, 4, 14200, 1000, 2100, 130, 10700),
		shipment(2024, 5, 14800, 600, 2000, 120, 11300),
		shipment(2024, 6, 13200, 800, 1900, 110, 10000),
		shipment(2024, 7, 10800, 3500, 1800, 100, 8200),
		shipment(2024, 8, 9200, 7500, 1900, 110, 7000),
		shipment(2024, 9, 7800, 8500, 2000, 120, 5900),
		shipment(2024, 10, 5200, 7000, 2100, 130, 3800),
		shipment(2024, 11, 3600, 5500, 2000, 120, 2600),
		shipment(2024, 12, 2000, 4000, 1800, 100, 1400),

		shipment(2025, 1, 1600, 3800, 1900, 110, 900),
		shipment(2025, 2, 7900, 1900, 2000, 120, 5600),
		shipment(2025, 3, 16400, 700, 2100, 130, 12100),
		shipment(2025, 4, 17100, 300, 2200, 140, 12900),
		shipment(2025, 5, 15800, 400, 2100, 130, 12000),
		shipment(2025, 6, 14300, 1200, 2000, 120, 10900),
		shipment(2025, 7, 12600, 4100, 1900, 110, 9500),
		shipment(2025, 8, 10100, 6800, 2000, 120, 7400),
		shipment(2025, 9, 8200, 7600, 2100, 130, 5800),
		shipment(2025, 10, 8800, 6900, 2200, 140, 6400),
		shipment(2025, 11, 7000, 5300, 2100, 130, 5200),
	}
}

func destinations() []registry.DestinationSet {
	return []registry.DestinationSet{
		{Commodity: models.Soybeans, Year: 2025, Rows: []models.ExportDestinationRow{
			{CountryCode: "160", Country: "China", Volume: 82500},
			{CountryCode: "245", Country: "Spain", Volume: 4100},
			{CountryCode: "776", Country: "Thailand", Volume: 3100},
			{CountryCode: "573", Country: "Netherlands", Volume: 2200},
			{CountryCode: "827", Country: "Turkey", Volume: 2000},
			{CountryCode: "399", Country: "Japan", Volume: 1600},
			{CountryCode: "372", Country: "Iran", Volume: 1500},
			{CountryCode: "240", Country: "Egypt", Volume: 1200},
			{CountryCode: "576", Country: "Pakistan", Volume: 1100},
			{CountryCode: "000", Country: "Others", Volume: 8500},
		}},
		{Commodity: models.Corn, Year: 2025, Rows: []models.ExportDestinationRow{
			{CountryCode: "240", Country: "Egypt", Volume: 5600},
			{CountryCode: "399", Country: "Japan", Volume: 4700},
			{CountryCode: "372", Country: "Iran", Volume: 4500},
			{CountryCode: "741", Country: "Vietnam", Volume: 4200},
			{CountryCode: "190", Country: "South Korea", Volume: 3300},
			{CountryCode: "000", Country: "Others", Volume: 16700},
		}},
	}
}

func ports() []registry.PortSet {
	return []registry.PortSet{
		{Year: 2025, Rows: []models.PortShareRow{
			{Port: "Santos", State: "SP", Volumes: map[models.Commodity]float64{models.Soybeans: 34500, models.Corn: 14000}},
			{Port: "Paranaguá", State: "PR", Volumes: map[models.Commodity]float64{models.Soybeans: 19400, models.Corn: 5200}},
			{Port: "Rio Grande", State: "RS", Volumes: map[models.Commodity]float64{models.Soybeans: 15100, models.Corn: 1100}},
			{Port: "São Luís", State: "MA", Volumes: map[models.Commodity]float64{models.Soybeans: 12900, models.Corn: 4800}},
			{Port: "Barcarena", State: "PA", Volumes: map[models.Commodity]float64{models.Soybeans: 9700, models.Corn: 7900}},
			{Port: "São Francisco do Sul", State: "SC", Volumes: map[models.Commodity]float64{models.Soybeans: 7500, models.Corn: 3100}},
			{Port: "Others", State: "-", Volumes: map[models.Commodity]float64{models.Soybeans: 8600, models.Corn: 3900}},
		}},
	}
}

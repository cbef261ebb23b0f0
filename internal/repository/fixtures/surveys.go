package fixtures

import "github.com/mamadbah2/cropstats/internal/domain/models"

func release(ordinal int, label, date string, state models.SurveyState, soybeans, corn, totalGrains float64) models.SurveyRow {
	return models.SurveyRow{
		Ordinal: ordinal,
		Label:   label,
		Date:    date,
		State:   state,
		Estimates: map[models.Commodity]float64{
			models.Soybeans: soybeans,
			models.Corn:     corn,
		},
		TotalGrains: totalGrains,
	}
}

func scheduled(ordinal int, label, date string) models.SurveyRow {
	return models.SurveyRow{Ordinal: ordinal, Label: label, Date: date, State: models.SurveyPending}
}

func surveys() []models.SurveySeries {
	const released = models.SurveyReleased

	return []models.SurveySeries{
		{CropYear: "2024/25", Rows: []models.SurveyRow{
			release(1, "1st (Oct)", "2024-10-10", released, 166050, 119740, 322240),
			release(2, "2nd (Nov)", "2024-11-13", released, 166210, 119810, 322500),
			release(3, "3rd (Dec)", "2024-12-12", released, 166140, 119630, 322300),
			release(4, "4th (Jan)", "2025-01-14", released, 166330, 119550, 322600),
			release(5, "5th (Feb)", "2025-02-13", released, 167370, 122000, 326200),
			release(6, "6th (Mar)", "2025-03-13", released, 167870, 124750, 329500),
			release(7, "7th (Apr)", "2025-04-10", released, 168340, 126060, 330900),
			release(8, "8th (May)", "2025-05-15", released, 168300, 128250, 333500),
			release(9, "9th (Jun)", "2025-06-12", released, 169490, 132000, 339000),
			release(10, "10th (Jul)", "2025-07-10", released, 169660, 134700, 342000),
			release(11, "11th (Aug)", "2025-08-14", released, 171470, 139660, 350000),
			release(12, "12th (Sep)", "2025-09-11", models.SurveyFinal, 171480, 139700, 350200),
		}},
		{CropYear: "2025/26", Rows: []models.SurveyRow{
			release(1, "1st (Oct)", "2025-10-16", released, 177640, 138590, 354700),
			release(2, "2nd (Nov)", "2025-11-13", released, 177640, 138780, 355100),
			release(3, "3rd (Dec)", "2025-12-11", models.SurveyCurrent, 177120, 138840, 354500),
			scheduled(4, "4th (Jan)", "2026-01-15"),
			scheduled(5, "5th (Feb)", "2026-02-12"),
			scheduled(6, "6th (Mar)", "2026-03-12"),
			scheduled(7, "7th (Apr)", "2026-04-16"),
			scheduled(8, "8th (May)", "2026-05-14"),
			scheduled(9, "9th (Jun)", "2026-06-11"),
			scheduled(10, "10th (Jul)", "2026-07-09"),
			scheduled(11, "11th (Aug)", "2026-08-13"),
			scheduled(12, "12th (Sep)", "2026-09-10"),
		}},
	}
}

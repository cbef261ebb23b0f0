package models

// BalanceSheetRow is one crop year of a supply and demand table. Stocks may be
// negative when the source carries a reporting correction forward.
type BalanceSheetRow struct {
	Year         string  `json:"year" bson:"year"`
	OpeningStock float64 `json:"openingStock" bson:"opening_stock"`
	Production   float64 `json:"production" bson:"production"`
	Imports      float64 `json:"imports" bson:"imports"`
	Consumption  float64 `json:"consumption" bson:"consumption"`
	Exports      float64 `json:"exports" bson:"exports"`
	EndingStock  float64 `json:"endingStock" bson:"ending_stock"`
	IsProjection bool    `json:"isProjection,omitempty" bson:"is_projection,omitempty"`
}

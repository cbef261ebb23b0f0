package models

// StateShareRow is one state's contribution to national output.
type StateShareRow struct {
	State      string  `json:"state" bson:"state"`
	Production float64 `json:"production" bson:"production"` // thousand metric tons
	Area       float64 `json:"area" bson:"area"`             // thousand hectares
	Pct        float64 `json:"pct" bson:"pct"`               // share of national production
}

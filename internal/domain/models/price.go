package models

// MonthlyPriceRow holds the average producer quotes of one month, by
// commodity and then by location (state abbreviation or port).
type MonthlyPriceRow struct {
	Year   int                              `json:"year" bson:"year"`
	Month  int                              `json:"month" bson:"month"`
	Quotes map[Commodity]map[string]float64 `json:"quotes" bson:"quotes"` // BRL per 60 kg bag
}

// Quote returns one price quote.
func (r MonthlyPriceRow) Quote(c Commodity, location string) (float64, bool) {
	byLocation, ok := r.Quotes[c]
	if !ok {
		return 0, false
	}
	v, ok := byLocation[location]
	return v, ok
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthName returns the short English month name, or "" when out of 1..12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

package models

// DestinationShipment is the part of a month's shipments bound for one buyer.
type DestinationShipment struct {
	Country   string    `json:"country" bson:"country"`
	Commodity Commodity `json:"commodity" bson:"commodity"`
	Volume    float64   `json:"volume" bson:"volume"` // thousand metric tons
}

// MonthlyExportRow holds one month of export shipments.
type MonthlyExportRow struct {
	Year        int                   `json:"year" bson:"year"`
	Month       int                   `json:"month" bson:"month"`
	Volumes     map[Commodity]float64 `json:"volumes" bson:"volumes"` // thousand metric tons
	Destination *DestinationShipment  `json:"destination,omitempty" bson:"destination,omitempty"`
	IsPartial   bool                  `json:"isPartial,omitempty" bson:"is_partial,omitempty"`
}

// Volume returns the shipped volume of one commodity, zero when absent.
func (r MonthlyExportRow) Volume(c Commodity) float64 {
	return r.Volumes[c]
}

// DestinationVolume returns the destination volume when it refers to c.
func (r MonthlyExportRow) DestinationVolume(c Commodity) (float64, bool) {
	if r.Destination == nil || r.Destination.Commodity != c {
		return 0, false
	}
	return r.Destination.Volume, true
}

// ExportDestinationRow is one importing country's yearly total.
type ExportDestinationRow struct {
	CountryCode string  `json:"countryCode" bson:"country_code"`
	Country     string  `json:"countryName" bson:"country"`
	Volume      float64 `json:"volume" bson:"volume"` // thousand metric tons
}

// PortShareRow is one port's yearly shipments across commodities.
type PortShareRow struct {
	Port    string                `json:"portName" bson:"port"`
	State   string                `json:"state" bson:"state"`
	Volumes map[Commodity]float64 `json:"volumes" bson:"volumes"` // thousand metric tons
}

package models

import (
	"fmt"
	"strings"
)

// Attribute selects one figure of a CropFigures record.
type Attribute string

const (
	AttrArea       Attribute = "area"
	AttrProduction Attribute = "production"
	AttrYield      Attribute = "yield"
)

// ParseAttribute validates a requested crop attribute.
func ParseAttribute(value string) (Attribute, error) {
	switch a := Attribute(strings.ToLower(strings.TrimSpace(value))); a {
	case AttrArea, AttrProduction, AttrYield:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown attribute %q", ErrInvalidArgument, value)
	}
}

// CropFigures holds the planted area, output and yield of one commodity in one crop year.
type CropFigures struct {
	Area       float64 `json:"area" bson:"area"`             // thousand hectares
	Production float64 `json:"production" bson:"production"` // thousand metric tons
	Yield      float64 `json:"yield" bson:"yield"`           // metric tons per hectare
}

// Value returns the figure named by the attribute.
func (f CropFigures) Value(attr Attribute) float64 {
	switch attr {
	case AttrArea:
		return f.Area
	case AttrYield:
		return f.Yield
	default:
		return f.Production
	}
}

// CropYearRecord is one crop year of the historical production series.
type CropYearRecord struct {
	Year         string                    `json:"year" bson:"year"`
	Crops        map[Commodity]CropFigures `json:"crops" bson:"crops"`
	IsProjection bool                      `json:"isProjection,omitempty" bson:"is_projection,omitempty"`
}

// Figures returns the commodity's figures for the record's crop year.
func (r CropYearRecord) Figures(c Commodity) (CropFigures, bool) {
	f, ok := r.Crops[c]
	return f, ok
}

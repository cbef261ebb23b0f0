// Package projection reshapes registry records and derived figures into the
// flat rows charts and tables consume. Every projection is total over a
// well-formed dataset: a figure that cannot be derived becomes a nil pointer
// instead of an error.
//
// Volumes are projected either in the raw unit of the sources (thousand
// metric tons, thousand hectares) or in millions, the dashboard unit. Yields
// and prices are never scaled.
package projection

import (
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/cropstats/internal/domain/models"
)

// Scale selects the unit volumes and areas are projected in.
type Scale int

const (
	// Raw keeps thousand metric tons and thousand hectares.
	Raw Scale = iota
	// Millions converts to million metric tons and million hectares,
	// rounded to three decimals.
	Millions
)

const (
	UnitThousandTons = "mil t"
	UnitMillionTons  = "MMT"
	UnitThousandHa   = "mil ha"
	UnitMillionHa    = "Mha"
	UnitYield        = "t/ha"
	UnitPrice        = "BRL/60kg bag"
	UnitPercent      = "%"

	displayPlaces = 3
	percentPlaces = 2
)

// ParseScale maps the "unit" query value to a Scale. Anything but "raw"
// selects Millions.
func ParseScale(value string) Scale {
	if value == "raw" {
		return Raw
	}
	return Millions
}

// Convert applies the scale to a volume or area.
func (s Scale) Convert(v float64) float64 {
	if s == Raw {
		return v
	}
	return decimal.NewFromFloat(v).Shift(-3).Round(displayPlaces).InexactFloat64()
}

// VolumeUnit labels tonnage fields.
func (s Scale) VolumeUnit() string {
	if s == Raw {
		return UnitThousandTons
	}
	return UnitMillionTons
}

// AreaUnit labels planted area fields.
func (s Scale) AreaUnit() string {
	if s == Raw {
		return UnitThousandHa
	}
	return UnitMillionHa
}

// Unit labels one crop attribute.
func (s Scale) Unit(attr models.Attribute) string {
	switch attr {
	case models.AttrArea:
		return s.AreaUnit()
	case models.AttrYield:
		return UnitYield
	default:
		return s.VolumeUnit()
	}
}

// Attribute converts one crop figure; yields pass through.
func (s Scale) Attribute(attr models.Attribute, v float64) float64 {
	if attr == models.AttrYield {
		return v
	}
	return s.Convert(v)
}

func (s Scale) String() string {
	if s == Raw {
		return "raw"
	}
	return "millions"
}

// Percent rounds a percentage for display.
func Percent(v float64) float64 {
	return decimal.NewFromFloat(v).Round(percentPlaces).InexactFloat64()
}

func percentOrNil(v float64, err error) *float64 {
	if err != nil {
		return nil
	}
	p := Percent(v)
	return &p
}

func ptr(v float64) *float64 { return &v }

// LastN returns the trailing n items, or all of them when n < 1 or n exceeds
// the length.
func LastN[T any](items []T, n int) []T {
	if n < 1 || n >= len(items) {
		return items
	}
	return items[len(items)-n:]
}

// RoundYield rounds a computed t/ha figure to the published precision.
func RoundYield(v float64) float64 {
	return decimal.NewFromFloat(v).Round(percentPlaces).InexactFloat64()
}

package models

import (
	"fmt"
	"strings"
)

// Commodity identifies a tracked crop or processed soy product.
type Commodity string

const (
	Soybeans Commodity = "soybeans"
	Corn     Commodity = "corn"
	SoyMeal  Commodity = "soy_meal"
	SoyOil   Commodity = "soy_oil"
	Wheat    Commodity = "wheat"

	// CornSafrinha is the second-season corn crop. It is a sub-series of
	// Corn and is never summed together with it.
	CornSafrinha Commodity = "corn_safrinha"
)

var apiCommodities = []Commodity{Soybeans, Corn, SoyMeal, SoyOil, Wheat}

// APICommodities lists the commodities addressable through the data API.
func APICommodities() []Commodity {
	return append([]Commodity(nil), apiCommodities...)
}

// ParseCommodity normalizes a path or query value into a Commodity.
func ParseCommodity(value string) (Commodity, error) {
	normalized := Commodity(strings.ToLower(strings.TrimSpace(value)))
	for _, c := range apiCommodities {
		if c == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown commodity %q", ErrInvalidArgument, value)
}

// NCMCode returns the Mercosur tariff heading used by the SECEX trade statistics.
func (c Commodity) NCMCode() string {
	switch c {
	case Soybeans:
		return "1201"
	case Corn, CornSafrinha:
		return "1005"
	case SoyMeal:
		return "2304"
	case SoyOil:
		return "1507"
	case Wheat:
		return "1001"
	default:
		return ""
	}
}

// Label is the human readable name shown on charts and workbook sheets.
func (c Commodity) Label() string {
	switch c {
	case Soybeans:
		return "Soybeans"
	case Corn:
		return "Corn"
	case SoyMeal:
		return "Soy meal"
	case SoyOil:
		return "Soy oil"
	case Wheat:
		return "Wheat"
	case CornSafrinha:
		return "Corn (safrinha)"
	default:
		return string(c)
	}
}

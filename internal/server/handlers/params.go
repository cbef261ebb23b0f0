package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/service/projection"
)

// queryInt reads an optional positive integer; 0 means absent.
func queryInt(c *gin.Context, name string) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", models.ErrInvalidArgument, name)
	}
	return n, nil
}

func queryBool(c *gin.Context, name string, def bool) (bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", models.ErrInvalidArgument, name)
	}
	return v, nil
}

// queryScale honors ?unit=raw|millions over the endpoint default.
func queryScale(c *gin.Context, def projection.Scale) projection.Scale {
	raw := strings.ToLower(strings.TrimSpace(c.Query("unit")))
	if raw == "" {
		return def
	}
	return projection.ParseScale(raw)
}

func commodityParam(c *gin.Context) (models.Commodity, error) {
	return models.ParseCommodity(c.Param("commodity"))
}

// stateParam normalizes a state or location abbreviation. Names such as
// "Paranaguá" keep their case.
func stateParam(value string) string {
	value = strings.TrimSpace(value)
	if len(value) == 2 {
		return strings.ToUpper(value)
	}
	return value
}

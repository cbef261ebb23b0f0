package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/service/dashboard"
	"github.com/mamadbah2/cropstats/internal/service/projection"
)

// Version is reported by the index endpoint.
const Version = "1.0.0"

// DashboardService is the read side the API serves from.
type DashboardService interface {
	Summary() *dashboard.SummaryResponse
	Cards() *dashboard.CardsResponse
	View(sel models.Selection) (*dashboard.View, error)
	BalanceSheet(c models.Commodity, years int, scale projection.Scale) (*dashboard.BalanceSheetResponse, error)
	SoyComplex(scale projection.Scale) (*dashboard.SoyComplexResponse, error)
	Production(c models.Commodity, years int, state string, scale projection.Scale) (*dashboard.ProductionResponse, error)
	MonthlyExports(c models.Commodity, year int, includeDestination bool, scale projection.Scale) (*dashboard.MonthlyExportsResponse, error)
	ExportsByDestination(c models.Commodity, year, topN int, scale projection.Scale) (*dashboard.DestinationsResponse, error)
	ExportsByPort(c models.Commodity, year int, scale projection.Scale) (*dashboard.PortsResponse, error)
	Prices(c models.Commodity, year int, location string) (*dashboard.PricesResponse, error)
	CropSeries(attr models.Attribute, scale projection.Scale) *dashboard.SeriesResponse
}

// APIHandler serves the read-only statistics endpoints.
type APIHandler struct {
	svc    DashboardService
	logger *zap.Logger
	now    func() time.Time
}

// NewAPIHandler constructs the HTTP handler adapter.
func NewAPIHandler(svc DashboardService, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{svc: svc, logger: logger, now: time.Now}
}

// Index describes the service and its endpoints.
func (h *APIHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":      "Brazil Agricultural Data API",
		"version":   Version,
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"endpoints": gin.H{
			"dashboard":            "/api/v1/dashboard/summary",
			"cards":                "/api/v1/dashboard/cards",
			"view":                 "/api/v1/dashboard/view",
			"balance_sheet":        "/api/v1/balance-sheet/{commodity}",
			"soy_complex":          "/api/v1/soy-complex/balance",
			"exports_monthly":      "/api/v1/exports/monthly/{commodity}",
			"exports_destinations": "/api/v1/exports/by-destination/{commodity}",
			"exports_ports":        "/api/v1/exports/by-port/{commodity}",
			"production":           "/api/v1/production/{commodity}",
			"prices":               "/api/v1/prices/{commodity}",
			"workbook":             "/api/v1/export/dashboard.xlsx",
		},
		"data_sources": []string{
			"CONAB - portaldeinformacoes.conab.gov.br",
			"SECEX/MDIC - comexstat.mdic.gov.br",
		},
	})
}

func (h *APIHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary())
}

func (h *APIHandler) Cards(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Cards())
}

// View projects the dashboard tab picked by ?tab=&commodity=&year=.
func (h *APIHandler) View(c *gin.Context) {
	sel, err := models.NewSelection(c.Query("tab"), c.Query("commodity"), c.Query("year"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	view, err := h.svc.View(sel)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *APIHandler) BalanceSheet(c *gin.Context) {
	commodity, err := commodityParam(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	years, err := queryInt(c, "years")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp, err := h.svc.BalanceSheet(commodity, years, queryScale(c, projection.Millions))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *APIHandler) SoyComplex(c *gin.Context) {
	resp, err := h.svc.SoyComplex(queryScale(c, projection.Raw))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *APIHandler) Production(c *gin.Context) {
	commodity, err := commodityParam(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	years, err := queryInt(c, "years")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp, err := h.svc.Production(commodity, years, stateParam(c.Query("state")), queryScale(c, projection.Millions))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *APIHandler) MonthlyExports(c *gin.Context) {
	commodity, err := commodityParam(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	year, err := queryInt(c, "year")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	includeChina, err := queryBool(c, "include_china", true)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp, err := h.svc.MonthlyExports(commodity, year, includeChina, queryScale(c, projection.Millions))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *APIHandler) ExportsByDestination(c *gin.Context) {
	commodity, err := commodityParam(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	year, err := queryInt(c, "year")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	topN, err := queryInt(c, "top_n")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp, err := h.svc.ExportsByDestination(commodity, year, topN, queryScale(c, projection.Millions))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *APIHandler) ExportsByPort(c *gin.Context) {
	commodity, err := commodityParam(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	year, err := queryInt(c, "year")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp, err := h.svc.ExportsByPort(commodity, year, queryScale(c, projection.Millions))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *APIHandler) Prices(c *gin.Context) {
	commodity, err := commodityParam(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	year, err := queryInt(c, "year")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp, err := h.svc.Prices(commodity, year, stateParam(c.Query("location")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
	"github.com/mamadbah2/cropstats/internal/render/chart"
	"github.com/mamadbah2/cropstats/internal/render/workbook"
	"github.com/mamadbah2/cropstats/internal/service/projection"
)

const (
	contentTypePNG  = "image/png"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SnapshotSource hands out the dataset in service.
type SnapshotSource interface {
	Current() *registry.Snapshot
}

// RenderHandler serves charts and the spreadsheet export.
type RenderHandler struct {
	svc       DashboardService
	snapshots SnapshotSource
	logger    *zap.Logger
}

// NewRenderHandler constructs the render HTTP handler.
func NewRenderHandler(svc DashboardService, snapshots SnapshotSource, logger *zap.Logger) *RenderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RenderHandler{svc: svc, snapshots: snapshots, logger: logger}
}

// ProductionChart draws one attribute of the production history.
func (h *RenderHandler) ProductionChart(c *gin.Context) {
	attr, err := models.ParseAttribute(strings.TrimSuffix(c.Param("attribute"), ".png"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := h.svc.CropSeries(attr, queryScale(c, projection.Millions))
	title := fmt.Sprintf("Brazil %s (%s)", attr, resp.Unit)

	var buf bytes.Buffer
	if err := chart.Series(&buf, title, resp.Data); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, contentTypePNG, buf.Bytes())
}

// ExportsChart draws a commodity's monthly shipments of a year.
func (h *RenderHandler) ExportsChart(c *gin.Context) {
	commodity, err := models.ParseCommodity(strings.TrimSuffix(c.Param("commodity"), ".png"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	year, err := queryInt(c, "year")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp, err := h.svc.MonthlyExports(commodity, year, false, queryScale(c, projection.Millions))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	title := fmt.Sprintf("%s exports %d (%s)", commodity.Label(), resp.Year, resp.Unit)

	var buf bytes.Buffer
	if err := chart.Exports(&buf, title, resp.Unit, resp.Data); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, contentTypePNG, buf.Bytes())
}

// Workbook streams every table of the dataset in service as XLSX.
func (h *RenderHandler) Workbook(c *gin.Context) {
	snap := h.snapshots.Current()

	var buf bytes.Buffer
	if err := workbook.Write(&buf, snap.Dataset); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="cropstats-v%d.xlsx"`, snap.Version))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	portssvc "github.com/SscSPs/monetary_correction_app/internal/core/ports/services"
	"github.com/SscSPs/monetary_correction_app/internal/dto"
	"github.com/SscSPs/monetary_correction_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// indexHandler handles HTTP requests related to price indices and their series.
type indexHandler struct {
	seriesService     portssvc.SeriesSvcFacade
	correctionService portssvc.CorrectionSvcFacade
}

// newIndexHandler creates a new indexHandler.
func newIndexHandler(ss portssvc.SeriesSvcFacade, cs portssvc.CorrectionSvcFacade) *indexHandler {
	return &indexHandler{
		seriesService:     ss,
		correctionService: cs,
	}
}

// RegisterIndexRoutes registers routes related to indices.
func RegisterIndexRoutes(rg *gin.RouterGroup, seriesService portssvc.SeriesSvcFacade, correctionService portssvc.CorrectionSvcFacade) {
	h := newIndexHandler(seriesService, correctionService)

	indices := rg.Group("/indices")
	{
		indices.GET("", h.listIndices)
		indices.GET("/comparison", h.compareIndices)
		indices.GET("/:indexID/series", h.getSeries)
	}
}

// listIndices godoc
// @Summary List supported indices
// @Description Retrieves the catalog of price indices available for correction
// @Tags indices
// @Produce  json
// @Success 200 {array} dto.IndexResponse
// @Router /indices [get]
func (h *indexHandler) listIndices(c *gin.Context) {
	indices := h.seriesService.ListIndices(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListIndexResponse(indices))
}

// getSeries godoc
// @Summary Get an index series
// @Description Retrieves every monthly variation of an index together with its available date range
// @Tags indices
// @Produce  json
// @Param   indexID path string true "Index ID" example(IPCA)
// @Param   refresh query bool false "Bypass the cache and reload from the source"
// @Success 200 {object} dto.SeriesResponse
// @Failure 400 {object} map[string]string "Invalid refresh flag"
// @Failure 404 {object} map[string]string "Index not supported"
// @Failure 502 {object} map[string]string "Index data provider unavailable"
// @Router /indices/{indexID}/series [get]
func (h *indexHandler) getSeries(c *gin.Context) {
	indexID := c.Param("indexID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("index_id", indexID))

	refresh := false
	if raw := c.Query("refresh"); raw != "" {
		var err error
		refresh, err = strconv.ParseBool(raw)
		if err != nil {
			respondWithServiceError(c, logger, apperrors.NewValidationError("Invalid refresh flag: "+raw), "Invalid refresh flag")
			return
		}
	}

	logger.Info("Received request to get series", slog.Bool("refresh", refresh))

	var (
		series *domain.IndexSeries
		err    error
	)
	if refresh {
		series, err = h.seriesService.RefreshSeries(c.Request.Context(), indexID)
	} else {
		series, err = h.seriesService.FetchSeries(c.Request.Context(), indexID)
	}
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to retrieve series")
		return
	}

	c.JSON(http.StatusOK, dto.ToSeriesResponse(series))
}

// compareIndices godoc
// @Summary Compare indices over a period
// @Description Retrieves the monthly variations and accumulated factor of several indices between two months.
// @Description Indices without data in the period are left out.
// @Tags indices
// @Produce  json
// @Param   start query string true "First month (YYYY-MM or MM-YYYY)" example(2020-01)
// @Param   end query string true "Last month (YYYY-MM or MM-YYYY)" example(2024-12)
// @Param   indices query string false "Comma separated index IDs, all when empty" example(IPCA,IGP_M)
// @Success 200 {object} dto.ComparisonResponse
// @Failure 400 {object} map[string]string "Invalid input or date"
// @Failure 404 {object} map[string]string "Index not supported"
// @Failure 502 {object} map[string]string "Index data provider unavailable"
// @Router /indices/comparison [get]
func (h *indexHandler) compareIndices(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var query dto.ComparisonQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for CompareIndices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	start, end, err := query.ParseDates()
	if err != nil {
		logger.Warn("Invalid comparison dates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var indexIDs []string
	for _, id := range strings.Split(query.Indices, ",") {
		if id = strings.TrimSpace(id); id != "" {
			indexIDs = append(indexIDs, id)
		}
	}

	windows, err := h.correctionService.CompareIndices(c.Request.Context(), start, end, indexIDs)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to compare indices")
		return
	}

	c.JSON(http.StatusOK, dto.ToComparisonResponse(start, end, windows))
}

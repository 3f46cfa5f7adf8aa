package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/monetary_correction_app/internal/core/ports/services"
	"github.com/SscSPs/monetary_correction_app/internal/dto"
	"github.com/SscSPs/monetary_correction_app/internal/middleware"
	"github.com/SscSPs/monetary_correction_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// correctionHandler handles HTTP requests related to monetary corrections.
type correctionHandler struct {
	correctionService portssvc.CorrectionSvcFacade
	formatter         utils.DisplayFormatter
}

// newCorrectionHandler creates a new correctionHandler.
func newCorrectionHandler(cs portssvc.CorrectionSvcFacade, formatter utils.DisplayFormatter) *correctionHandler {
	return &correctionHandler{
		correctionService: cs,
		formatter:         formatter,
	}
}

// RegisterCorrectionRoutes registers routes related to corrections.
func RegisterCorrectionRoutes(rg *gin.RouterGroup, correctionService portssvc.CorrectionSvcFacade, formatter utils.DisplayFormatter) {
	h := newCorrectionHandler(correctionService, formatter)

	corrections := rg.Group("/corrections")
	{
		corrections.POST("", h.computeCorrection)
	}
}

// computeCorrection godoc
// @Summary Correct a nominal amount
// @Description Corrects a nominal amount between two months using a price index and the Brazilian currency era table.
// @Description A start month after the end month deflates the amount instead of inflating it.
// @Tags corrections
// @Accept  json
// @Produce  json
// @Param   correction body dto.CorrectionRequest true "Correction parameters"
// @Success 200 {object} dto.CorrectionResponse
// @Failure 400 {object} map[string]string "Invalid input or date"
// @Failure 404 {object} map[string]string "Index not supported"
// @Failure 422 {object} map[string]string "Date outside the available series range"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to compute correction"
// @Failure 502 {object} map[string]string "Index data provider unavailable"
// @Router /corrections [post]
func (h *correctionHandler) computeCorrection(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeCorrection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	domainReq, err := req.ToDomain()
	if err != nil {
		logger.Warn("Invalid correction dates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("index_id", req.IndexID))
	logger.Info("Received request to compute correction",
		slog.String("start_date", req.StartDate),
		slog.String("end_date", req.EndDate))

	result, err := h.correctionService.ComputeCorrection(c.Request.Context(), domainReq)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to compute correction")
		return
	}

	c.JSON(http.StatusOK, dto.ToCorrectionResponse(result, h.formatter))
}

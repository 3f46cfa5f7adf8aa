package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/monetary_correction_app/internal/core/ports/services"
	"github.com/SscSPs/monetary_correction_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// RegisterEraRoutes registers the currency era table route.
func RegisterEraRoutes(rg *gin.RouterGroup, correctionService portssvc.CorrectionSvcFacade) {
	rg.GET("/eras", listEras(correctionService))
}

// listEras godoc
// @Summary List currency eras
// @Description Retrieves the Brazilian currency eras with their cut-over dates and conversion factors to the real
// @Tags eras
// @Produce  json
// @Success 200 {array} dto.EraResponse
// @Router /eras [get]
func listEras(correctionService portssvc.CorrectionSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.ToListEraResponse(correctionService.ListEras(c.Request.Context())))
	}
}

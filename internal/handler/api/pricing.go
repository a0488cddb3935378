package api

import (
	"net/http"

	reqdto "frame-pricing/internal/handler/dto/request"
	resdto "frame-pricing/internal/handler/dto/response"
	"frame-pricing/internal/handler/httperr"
	"frame-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Calculate frame price
// @Description Price a custom frame from its height, width (mm) and material
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.CalculatePriceRequest true "Frame dimensions"
// @Success 200 {object} resdto.CalculatePriceResponse
// @Failure 400 {object} httperr.Response
// @Router /apps/proxy/calculate-price [post]
// @Router /api/calculate-price [post]
func (h *PricingHandler) Calculate(c *gin.Context) {
	var req reqdto.CalculatePriceRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.q.Calculate(c.Request.Context(), req.Height, req.Width, req.Material)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceQuoteView(view))
}

package api

import (
	"net/http"

	resdto "frame-pricing/internal/handler/dto/response"
	"frame-pricing/internal/handler/httperr"
	"frame-pricing/internal/handler/middleware"
	"frame-pricing/internal/infra/shopify"
	"frame-pricing/internal/pkg/clock"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var (
	errBadShopParam    = errs.New("shop parameter is not a shop domain")
	errUsageNotExposed = errs.New("usage endpoint disabled in release mode")
)

type CleanupHandler struct {
	cmds  commands.TempProductCommands
	clock clock.Clock
}

func NewCleanupHandler(cmds commands.TempProductCommands, clk clock.Clock) *CleanupHandler {
	return &CleanupHandler{cmds: cmds, clock: clk}
}

// @Summary Delete expired temporary products
// @Description Sweep one shop when the shop query parameter is given, otherwise every shop with expired records
// @Tags temp-products
// @Produce json
// @Param X-Cron-Secret header string true "Scheduler secret"
// @Param shop query string false "Shop domain"
// @Success 200 {object} resdto.CleanupResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/cleanup-temp-products [post]
func (h *CleanupHandler) Cleanup(c *gin.Context) {
	ctx := c.Request.Context()

	if shop := c.Query("shop"); shop != "" {
		if !shopify.ValidShopDomain(shop) {
			httperr.AbortWithError(c, http.StatusBadRequest, errBadShopParam, "Invalid shop", nil)
			return
		}
		report, err := h.cmds.SweepShop(ctx, shop)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromSweepReport(report, h.clock.Now()))
		return
	}

	reports, err := h.cmds.SweepAll(ctx)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShopSweepReports(reports, h.clock.Now()))
}

// @Summary Cleanup endpoint usage
// @Tags temp-products
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 403 {object} httperr.Response
// @Router /api/cleanup-temp-products [get]
func (h *CleanupHandler) Usage(c *gin.Context) {
	if gin.Mode() == gin.ReleaseMode {
		httperr.AbortWithError(c, http.StatusForbidden, errUsageNotExposed, "Forbidden", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"endpoint": "/api/cleanup-temp-products",
		"method":   http.MethodPost,
		"headers":  gin.H{middleware.CronSecretHeader: "required"},
		"query":    gin.H{"shop": "optional shop domain; omit to sweep every shop"},
	})
}

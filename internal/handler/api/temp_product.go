package api

import (
	"net/http"

	reqdto "frame-pricing/internal/handler/dto/request"
	resdto "frame-pricing/internal/handler/dto/response"
	"frame-pricing/internal/handler/httperr"
	"frame-pricing/internal/handler/middleware"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/commands"
	"frame-pricing/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var errNoShop = errs.Mark(errs.New("no authenticated shop on request"), errs.ErrUnauthorized)

type TempProductHandler struct {
	cmds     commands.TempProductCommands
	sessions shared.SessionProvider
}

func NewTempProductHandler(cmds commands.TempProductCommands, sessions shared.SessionProvider) *TempProductHandler {
	return &TempProductHandler{cmds: cmds, sessions: sessions}
}

// @Summary Create or reuse a temporary product
// @Description Provision a purchasable catalog product for a custom frame, reusing an unexpired one with the same dimensions
// @Tags temp-products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTempProductRequest true "Frame dimensions"
// @Success 200 {object} resdto.CreateTempProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /apps/proxy/create-temp-product [post]
// @Router /api/create-temp-product [post]
func (h *TempProductHandler) Create(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoShop, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateTempProductRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	session, err := h.sessions.ForShop(c.Request.Context(), shop)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	result, err := h.cmds.ProvisionOrReuse(c.Request.Context(), req.ToCommand(shop), session.Admin)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProvisionResult(result))
}

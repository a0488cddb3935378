package httperr

import (
	"net/http"

	"frame-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// shared by the provisioning and cleanup routes
const remoteFailureMessage = "Remote catalog request failed"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps usecase errors onto HTTP statuses.
func AbortWithDomainError(c *gin.Context, err error) {
	var vErr *errs.ValidationError
	switch {
	case errs.As(err, &vErr):
		AbortWithError(c, http.StatusBadRequest, err, vErr.Error(), gin.H{"errors": vErr.Messages})
	case errs.Is(err, errs.ErrUnauthorized):
		AbortWithError(c, http.StatusUnauthorized, err, "Shop session not found or expired", nil)
	case errs.Is(err, errs.ErrSweepInProgress):
		AbortWithError(c, http.StatusConflict, err, "Cleanup already running for this shop", nil)
	case errs.Is(err, errs.ErrRemoteMutation):
		var mErr *errs.RemoteMutationError
		var detail any
		if errs.As(err, &mErr) {
			detail = gin.H{"errors": mErr.Messages}
		}
		AbortWithError(c, http.StatusBadGateway, err, remoteFailureMessage, detail)
	case errs.Is(err, errs.ErrRemoteEmptyResult), errs.Is(err, errs.ErrRemoteTransport):
		AbortWithError(c, http.StatusBadGateway, err, remoteFailureMessage, nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/auth"
	"github.com/jumptake/backend/models"
)

// respondError writes err as an ErrorResponse with the status of its kind.
// Internal errors are logged and their details withheld.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)

	if status >= http.StatusInternalServerError && kind != apperror.Configuration {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		c.JSON(status, models.ErrorResponse{
			Error: "Internal server error",
			Code:  status,
			Type:  string(apperror.Internal),
		})
		return
	}

	c.JSON(status, models.ErrorResponse{
		Error: apperror.MessageOf(err),
		Code:  status,
		Type:  apperror.CodeOf(err),
	})
}

// badRequest reports a malformed request body.
func badRequest(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{
		Error: message,
		Code:  http.StatusBadRequest,
		Type:  string(apperror.Validation),
	}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// callerID returns the authenticated account id, or "" without a token.
func callerID(c *gin.Context) string {
	if claims := auth.GetAuthClaims(c); claims != nil {
		return claims.AccountID
	}
	return ""
}

// limitParam reads the optional ?limit= query parameter.
func limitParam(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.Newf(apperror.Validation, "limit must be a non-negative integer, got %q", raw)
	}
	return n, nil
}

package handlers

import (
	"net/http"
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/http/validation"
	"taskhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

// respondBindingError answers 400, listing the offending fields when the
// payload decoded but failed validation.
func respondBindingError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)
	if details := validation.FieldErrors(err); len(details) > 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateValidationError(http.StatusBadRequest, apierrors.MsgValidationFailed, lang, details),
		)
		return
	}
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
	)
}

// requireUserID returns the caller's id, answering 401 when the gate did not run.
func requireUserID(c *gin.Context) (string, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, apierrors.MsgUnauthorized)
		return "", false
	}
	return user.ID, true
}

func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !validation.IsValidID(id) {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return "", false
	}
	return id, true
}

func probe(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.ProbeResponse{
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    "success",
	})
}

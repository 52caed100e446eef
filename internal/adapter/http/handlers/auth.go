package handlers

import (
	"errors"
	"net/http"
	"strings"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	validation.RegisterValidators()
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Probe(c *gin.Context) {
	probe(c, "Auth module is working")
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			respondError(c, http.StatusConflict, apierrors.MsgEmailAlreadyExists)
			return
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(
				http.StatusBadRequest,
				apierrors.MsgValidationFailed,
				middleware.GetLang(c),
				[]apierrors.FieldError{{Field: "password", Rule: "max"}},
			))
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToAuthResponse(result))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), domain.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, apierrors.MsgInvalidCredentials)
		case errors.Is(err, domain.ErrAccountDeactivated):
			respondError(c, http.StatusUnauthorized, apierrors.MsgAccountDeactivated)
		default:
			zap.L().Error("failed to log user in", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToAuthResponse(result))
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, apierrors.MsgUnauthorized)
		return
	}
	c.JSON(http.StatusOK, mapper.ToProfileResponse(user))
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jongwon/todo-app/internal/adapter/http/dto"
	"github.com/jongwon/todo-app/internal/adapter/http/mapper"
	"github.com/jongwon/todo-app/internal/adapter/http/middleware"
	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/internal/core/ports"
	"github.com/jongwon/todo-app/pkg/apierrors"
)

type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidLoginPayload)
		return
	}

	token, session, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:      mapper.ToUserItem(user),
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.authService.Logout(c.Request.Context(), middleware.SessionToken(c, h.cookie.Name)); err != nil {
		zap.L().Error("failed to log out", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogout, lang),
		)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, apierrors.CreateMessage(apierrors.MsgLoggedOut, lang))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.CurrentUser(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailCurrentUser, "failed to load current user")
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

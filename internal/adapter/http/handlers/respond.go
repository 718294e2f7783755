package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jongwon/todo-app/internal/adapter/http/middleware"
	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/pkg/apierrors"
)

// respondError maps a service error onto the HTTP error taxonomy. Storage
// and other unexpected failures are logged and answered with failMsg only.
func respondError(c *gin.Context, err error, failMsg, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	if verr, ok := domain.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, verr.MessageID, lang))
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang))
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang))
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
	default:
		zap.L().Error(logMsg, append(fields, zap.Error(err))...)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, failMsg, lang))
	}
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

// pathID returns the :id parameter when it is a well-formed UUID. Malformed
// ids are reported as not found, like ids of other users.
func pathID(c *gin.Context, notFoundMsg string) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, notFoundMsg, middleware.GetLang(c)),
		)
		return "", false
	}
	return id.String(), true
}

// bindJSONWithRaw decodes the body into req and also returns the raw field
// map, so partial updates can tell an absent field from an explicit null.
func bindJSONWithRaw(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		return nil, err
	}
	return raw, nil
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"totl_backend/internal/logger"
	"totl_backend/internal/middleware"
	"totl_backend/internal/models"
	"totl_backend/internal/services"
	"totl_backend/internal/validator"
	"totl_backend/pkg/apperrors"
)

// BaseHandler carries the helpers shared by every handler: request binding
// with validation and uniform error rendering.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{validator: validator.New()}
}

// BindAndValidateJSON binds the JSON body into obj and runs struct
// validation. On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
		}
		return false
	}
	return true
}

// HandleServiceError renders a service error. Anything that is not an
// AppError is logged and reported as a generic internal error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.CtxError(c.Request.Context(), "internal error", "error", appErr.Error())
		}
		c.JSON(appErr.HTTPCode, gin.H{"error": appErr})
		return
	}
	logger.CtxError(c.Request.Context(), "unhandled error", "error", err.Error())
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// GetAndAuthorizeUserID returns the authenticated user id or writes a 401.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return userID, true
}

// GetViewer builds the viewer identity for endpoints whose response shape
// depends on who is asking. Anonymous requests yield a zero Viewer.
func (h *BaseHandler) GetViewer(c *gin.Context) services.Viewer {
	viewer := services.Viewer{UserID: middleware.GetUserID(c)}
	if roleVal, exists := c.Get("role"); exists {
		if role, ok := roleVal.(string); ok {
			viewer.Role = models.UserRole(role)
		}
	}
	return viewer
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"totl_backend/internal/middleware"
	"totl_backend/internal/models"
	"totl_backend/internal/services"
	"totl_backend/internal/services/dto"
)

type ModerationHandler struct {
	*BaseHandler
	moderationService *services.ModerationService
}

func NewModerationHandler(base *BaseHandler, moderationService *services.ModerationService) *ModerationHandler {
	return &ModerationHandler{BaseHandler: base, moderationService: moderationService}
}

func (h *ModerationHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/flags", middleware.AuthMiddleware(), h.Flag)

	admin := api.Group("/admin/flags",
		middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("/:id/review", h.StartReview)
		admin.POST("/:id/resolve", h.Resolve)
	}
}

func (h *ModerationHandler) Flag(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.FlagContentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	flag, err := h.moderationService.Flag(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flag)
}

func (h *ModerationHandler) List(c *gin.Context) {
	status := models.FlagStatus(c.DefaultQuery("status", string(models.FlagStatusOpen)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	flags, err := h.moderationService.ListByStatus(status, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flags": flags})
}

func (h *ModerationHandler) StartReview(c *gin.Context) {
	flag, err := h.moderationService.StartReview(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flag)
}

func (h *ModerationHandler) Resolve(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ResolveFlagRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	flag, err := h.moderationService.Resolve(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flag)
}

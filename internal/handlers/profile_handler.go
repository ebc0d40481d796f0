package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"totl_backend/internal/middleware"
	"totl_backend/internal/models"
	"totl_backend/internal/services"
	"totl_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(api *gin.RouterGroup) {
	// Public profile reads carry optional auth: the response shape depends
	// on who is asking.
	api.GET("/profiles/:slug", middleware.OptionalAuthMiddleware(), h.GetBySlug)

	me := api.Group("/my", middleware.AuthMiddleware())
	{
		me.GET("/profile", middleware.RequireRoles(models.UserRoleTalent), h.GetOwn)
		me.PATCH("/profile", middleware.RequireRoles(models.UserRoleTalent), h.UpdateOwn)
		me.GET("/client-profile", middleware.RequireRoles(models.UserRoleClient, models.UserRoleAdmin), h.GetOwnClient)
		me.PATCH("/client-profile", middleware.RequireRoles(models.UserRoleClient, models.UserRoleAdmin), h.UpdateOwnClient)
	}
}

func (h *ProfileHandler) GetBySlug(c *gin.Context) {
	profile, err := h.profileService.GetBySlug(h.GetViewer(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetOwn(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTalentProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateOwnTalentProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetOwnClient(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetOwnClientProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateOwnClient(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateClientProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateOwnClientProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

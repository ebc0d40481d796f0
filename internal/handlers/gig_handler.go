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

type GigHandler struct {
	*BaseHandler
	gigService *services.GigService
}

func NewGigHandler(base *BaseHandler, gigService *services.GigService) *GigHandler {
	return &GigHandler{BaseHandler: base, gigService: gigService}
}

func (h *GigHandler) RegisterRoutes(api *gin.RouterGroup) {
	gigs := api.Group("/gigs")
	{
		gigs.GET("", h.ListActive)
		gigs.GET("/:id", middleware.OptionalAuthMiddleware(), h.Get)
	}

	clientGigs := api.Group("/gigs", middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleClient, models.UserRoleAdmin))
	{
		clientGigs.POST("", h.Create)
		clientGigs.PATCH("/:id", h.Update)
		clientGigs.POST("/:id/publish", h.Publish)
		clientGigs.POST("/:id/close", h.Close)
		clientGigs.POST("/:id/cancel", h.Cancel)
		clientGigs.DELETE("/:id", h.Delete)
	}

	mine := api.Group("/my/gigs", middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleClient, models.UserRoleAdmin))
	{
		mine.GET("", h.ListMine)
	}
}

func (h *GigHandler) ListActive(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	gigs, err := h.gigService.ListActive(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gigs": gigs})
}

func (h *GigHandler) Get(c *gin.Context) {
	gig, err := h.gigService.Get(h.GetViewer(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	gig, err := h.gigService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gig)
}

func (h *GigHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	gig, err := h.gigService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) Publish(c *gin.Context) {
	h.transition(c, h.gigService.Publish)
}

func (h *GigHandler) Close(c *gin.Context) {
	h.transition(c, h.gigService.Close)
}

func (h *GigHandler) Cancel(c *gin.Context) {
	h.transition(c, h.gigService.Cancel)
}

func (h *GigHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.gigService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GigHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigs, err := h.gigService.ListByClient(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gigs": gigs})
}

func (h *GigHandler) transition(c *gin.Context, fn func(clientID, gigID string) (*dto.GigResponse, error)) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gig, err := fn(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gig)
}

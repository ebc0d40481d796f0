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

type ClientApplicationHandler struct {
	*BaseHandler
	clientApplicationService *services.ClientApplicationService
}

func NewClientApplicationHandler(base *BaseHandler, svc *services.ClientApplicationService) *ClientApplicationHandler {
	return &ClientApplicationHandler{BaseHandler: base, clientApplicationService: svc}
}

func (h *ClientApplicationHandler) RegisterRoutes(api *gin.RouterGroup) {
	user := api.Group("/client-applications", middleware.AuthMiddleware())
	{
		user.POST("", h.Submit)
		user.GET("/mine", h.GetOwn)
	}

	admin := api.Group("/admin/client-applications",
		middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListPending)
		admin.POST("/:id/approve", h.Approve)
		admin.POST("/:id/reject", h.Reject)
		admin.POST("/reminders", h.SendReminders)
	}
}

func (h *ClientApplicationHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitClientApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.clientApplicationService.Submit(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ClientApplicationHandler) GetOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	application, err := h.clientApplicationService.GetOwn(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ClientApplicationHandler) ListPending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	applications, err := h.clientApplicationService.ListPending(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_applications": applications})
}

func (h *ClientApplicationHandler) Approve(c *gin.Context) {
	h.decide(c, h.clientApplicationService.Approve)
}

func (h *ClientApplicationHandler) Reject(c *gin.Context) {
	h.decide(c, h.clientApplicationService.Reject)
}

// SendReminders triggers one follow-up sweep. Scheduling lives outside the
// process; this endpoint and the remind command are the only entry points.
func (h *ClientApplicationHandler) SendReminders(c *gin.Context) {
	result, err := h.clientApplicationService.SendFollowUpReminders()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ClientApplicationHandler) decide(c *gin.Context, fn func(adminID, id string, req *dto.DecideClientApplicationRequest) (*dto.ClientApplicationDecision, error)) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DecideClientApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	decision, err := fn(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}

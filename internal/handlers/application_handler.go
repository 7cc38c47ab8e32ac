package handlers

import (
	"net/http"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
	authGuard  gin.HandlerFunc
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService, authGuard gin.HandlerFunc) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
		authGuard:   authGuard,
	}
}

// RegisterRoutes регистрирует маршруты откликов (все под токеном)
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	apps.Use(h.authGuard)
	{
		apps.POST("", h.Apply)
		apps.GET("/job/:job_id", h.ListForJob)
		apps.PATCH("/:id/status", h.Decide)
	}
}

// Apply
// @Summary      Отклик исполнителя на заявку
// @Tags         applications
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body dto.ApplyRequest true "Отклик"
// @Success      201 {object} dto.ApplicationResponse
// @Router       /api/v1/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.appService.Apply(db, user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Application submitted",
		"application_id": app.ID,
		"status":         app.Status,
	})
}

// ListForJob - отклики по заявке (только для ее владельца)
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	apps, err := h.appService.ListForJob(db, c.Param("job_id"), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// Decide - владелец заявки принимает или отклоняет отклик
func (h *ApplicationHandler) Decide(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.DecideApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.appService.Decide(db, c.Param("id"), user.ID, models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewApplicationResponse(app))
}

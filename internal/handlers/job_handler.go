package handlers

import (
	"net/http"

	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
	authGuard  gin.HandlerFunc
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, authGuard gin.HandlerFunc) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		authGuard:   authGuard,
	}
}

// RegisterRoutes регистрирует маршруты заявок на работу.
// Листинг и чтение публичные; мутации - только с токеном.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/:id", h.Get)
	}

	protected := rg.Group("/jobs")
	protected.Use(h.authGuard)
	{
		protected.POST("", h.Create)
		protected.PATCH("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

// Create
// @Summary      Создание заявки на работу
// @Tags         jobs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateJobRequest true "Заявка"
// @Success      201 {object} models.Job
// @Router       /api/v1/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Create(db, user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job created",
		"job":     job,
	})
}

// List - публичный листинг открытых заявок
func (h *JobHandler) List(c *gin.Context) {
	var q dto.ListJobsQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	db := h.GetDB(c)

	response, err := h.jobService.List(db, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get - публичное чтение одной заявки
func (h *JobHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Update - частичное обновление, только владелец
func (h *JobHandler) Update(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Update(db, c.Param("id"), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Delete - жесткое удаление, только владелец
func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.Delete(db, c.Param("id"), user.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

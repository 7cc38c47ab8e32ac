package handlers

import (
	"net/http"

	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	*BaseHandler
	workerService services.WorkerService
	authGuard     gin.HandlerFunc
}

func NewWorkerHandler(base *BaseHandler, workerService services.WorkerService, authGuard gin.HandlerFunc) *WorkerHandler {
	return &WorkerHandler{
		BaseHandler:   base,
		workerService: workerService,
		authGuard:     authGuard,
	}
}

// RegisterRoutes регистрирует маршруты профилей исполнителей.
// Чтение и поиск рядом публичные; мутации требуют токен, и сервис
// дополнительно проверяет владение профилем.
func (h *WorkerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workers := rg.Group("/workers")
	{
		workers.GET("", h.Nearby)
		workers.GET("/:id", h.Get)
	}

	protected := rg.Group("/workers")
	protected.Use(h.authGuard)
	{
		protected.PATCH("/:id/skills", h.UpdateSkills)
		protected.PATCH("/:id/availability", h.UpdateAvailability)
		protected.PATCH("/:id/location", h.UpdateLocation)
	}
}

// Get - публичное чтение профиля
func (h *WorkerHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	profile, err := h.workerService.GetProfile(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateSkills - замена списка навыков (только владелец)
func (h *WorkerHandler) UpdateSkills(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateSkillsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.workerService.UpdateSkills(db, c.Param("id"), user.ID, req.Skills)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skills updated",
		"skills":  profile.Skills,
	})
}

// UpdateAvailability - hours > 0 означает "доступен"
func (h *WorkerHandler) UpdateAvailability(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateAvailabilityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.workerService.UpdateAvailability(db, c.Param("id"), user.ID, req.Hours)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability updated",
		"is_available": profile.IsAvailable,
		"hours":        profile.AvailableHours,
	})
}

// UpdateLocation - обе координаты обязательны
func (h *WorkerHandler) UpdateLocation(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.workerService.UpdateLocation(db, c.Param("id"), user.ID, *req.Lat, *req.Lng); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location updated"})
}

// Nearby - публичный поиск исполнителей рядом (евклидова заглушка)
func (h *WorkerHandler) Nearby(c *gin.Context) {
	var q dto.NearbyQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	db := h.GetDB(c)

	workers, err := h.workerService.ListNearby(db, *q.Lat, *q.Lng)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workers)
}

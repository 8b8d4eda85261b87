package reminder

import (
	"errors"
	"net/http"
	"time"

	"medcontrol/internal/middleware"
	"medcontrol/internal/pkg/pagination"
	"medcontrol/internal/pkg/response"
	"medcontrol/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/reminders")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/today", h.ListDueToday)
		group.GET("/active", h.ListActive)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	r, err := h.service.Create(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		if errors.Is(err, ErrUnknownMedication) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Medication not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create reminder")
		return
	}
	response.Success(c, http.StatusCreated, toResponse(r, time.Now()))
}

func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), middleware.CallerID(c), pagination.FromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list reminders")
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) ListDueToday(c *gin.Context) {
	items, err := h.service.ListDueToday(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list today's reminders")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list active reminders")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.Get(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrReminderNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reminder not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load reminder")
		return
	}
	response.Success(c, http.StatusOK, toResponse(r, time.Now()))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	r, err := h.service.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrReminderNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reminder not found")
		case errors.Is(err, ErrUnknownMedication):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Medication not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update reminder")
		}
		return
	}
	response.Success(c, http.StatusOK, toResponse(r, time.Now()))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		if errors.Is(err, ErrReminderNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reminder not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete reminder")
		return
	}
	response.NoContent(c)
}

package prescription

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
	group := protected.Group("/prescriptions")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/active", h.ListActive)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	p, err := h.service.Create(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		h.writeError(c, err, "CREATE_FAILED", "Failed to create prescription")
		return
	}
	response.Success(c, http.StatusCreated, toResponse(p, time.Now()))
}

func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), middleware.CallerID(c), pagination.FromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list prescriptions")
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list active prescriptions")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "GET_FAILED", "Failed to load prescription")
		return
	}
	response.Success(c, http.StatusOK, toResponse(p, time.Now()))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	p, err := h.service.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "UPDATE_FAILED", "Failed to update prescription")
		return
	}
	response.Success(c, http.StatusOK, toResponse(p, time.Now()))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		h.writeError(c, err, "DELETE_FAILED", "Failed to delete prescription")
		return
	}
	response.NoContent(c)
}

func (h *Handler) writeError(c *gin.Context, err error, code, fallback string) {
	switch {
	case errors.Is(err, ErrPrescriptionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Prescription not found")
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Dates must be in YYYY-MM-DD format")
	case errors.Is(err, ErrUnknownMedication):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Item references a medication that does not exist")
	default:
		response.Error(c, http.StatusInternalServerError, code, fallback)
	}
}

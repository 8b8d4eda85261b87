package medication

import (
	"errors"
	"net/http"

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
	group := protected.Group("/medications")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/search", h.Search)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	m, err := h.service.Create(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create medication")
		return
	}

	resp := toResponse(m)
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), middleware.CallerID(c), pagination.FromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list medications")
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) Search(c *gin.Context) {
	page, err := h.service.Search(c.Request.Context(), middleware.CallerID(c), c.Query("name"), pagination.FromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search medications")
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrMedicationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Medication not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load medication")
		return
	}

	resp := toResponse(m)
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	m, err := h.service.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrMedicationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Medication not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update medication")
		return
	}

	resp := toResponse(m)
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		if errors.Is(err, ErrMedicationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Medication not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete medication")
		return
	}
	response.NoContent(c)
}

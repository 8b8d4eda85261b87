package inventory

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
	group := protected.Group("/inventory")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/low-stock", h.ListLowStock)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	item, err := h.service.Create(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		if errors.Is(err, ErrUnknownMedication) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Medication not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create inventory item")
		return
	}
	response.Success(c, http.StatusCreated, toResponse(item))
}

func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), middleware.CallerID(c), pagination.FromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list inventory")
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) ListLowStock(c *gin.Context) {
	items, err := h.service.ListLowStock(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list low-stock items")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrInventoryItemNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load inventory item")
		return
	}
	response.Success(c, http.StatusOK, toResponse(item))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	item, err := h.service.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrInventoryItemNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update inventory item")
		return
	}
	response.Success(c, http.StatusOK, toResponse(item))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		if errors.Is(err, ErrInventoryItemNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete inventory item")
		return
	}
	response.NoContent(c)
}

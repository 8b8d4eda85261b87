package health

import (
	"errors"
	"net/http"
	"strconv"
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
	group := protected.Group("/health-records")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/latest", h.ListLatest)
		group.GET("/period", h.ListByPeriod)
		group.GET("/type/:type", h.ListByType)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	record, err := h.service.Create(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		h.writeError(c, err, "CREATE_FAILED", "Failed to create health record")
		return
	}
	response.Success(c, http.StatusCreated, toResponse(record))
}

func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), middleware.CallerID(c), pagination.FromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list health records")
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) ListByType(c *gin.Context) {
	page, err := h.service.ListByType(c.Request.Context(), middleware.CallerID(c), c.Param("type"), pagination.FromQuery(c))
	if err != nil {
		if errors.Is(err, ErrInvalidRecordType) {
			response.Error(c, http.StatusBadRequest, "INVALID_TYPE", "Record type must be pressure or glucose")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list health records")
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) ListLatest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	items, err := h.service.ListLatest(c.Request.Context(), middleware.CallerID(c), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list latest records")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) ListByPeriod(c *gin.Context) {
	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.Local)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PERIOD", "start must be a YYYY-MM-DD date")
		return
	}
	end, err := time.ParseInLocation("2006-01-02", c.Query("end"), time.Local)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PERIOD", "end must be a YYYY-MM-DD date")
		return
	}
	// make the end bound cover the whole day
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	page, err := h.service.ListByPeriod(c.Request.Context(), middleware.CallerID(c), start, end, pagination.FromQuery(c))
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			response.Error(c, http.StatusBadRequest, "INVALID_PERIOD", "end must not be before start")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list health records")
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "GET_FAILED", "Failed to load health record")
		return
	}
	response.Success(c, http.StatusOK, toResponse(record))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	record, err := h.service.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "UPDATE_FAILED", "Failed to update health record")
		return
	}
	response.Success(c, http.StatusOK, toResponse(record))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		h.writeError(c, err, "DELETE_FAILED", "Failed to delete health record")
		return
	}
	response.NoContent(c)
}

func (h *Handler) writeError(c *gin.Context, err error, code, fallback string) {
	switch {
	case errors.Is(err, ErrHealthRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Health record not found")
	case errors.Is(err, ErrInvalidRecordType):
		response.Error(c, http.StatusBadRequest, "INVALID_TYPE", "Record type must be pressure or glucose")
	case errors.Is(err, ErrMissingMeasurement):
		response.Error(c, http.StatusBadRequest, "MISSING_MEASUREMENT", "Required measurement fields are missing for this record type")
	default:
		response.Error(c, http.StatusInternalServerError, code, fallback)
	}
}

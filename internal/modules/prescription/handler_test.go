package prescription

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medcontrol/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(svc *Service, callerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/")
	group.Use(func(c *gin.Context) { c.Set(middleware.ContextUserID, callerID) })
	NewHandler(svc).RegisterProtectedRoutes(group)
	return router
}

func TestCreateHandlerForeignItemMedicationReadsAsNotFound(t *testing.T) {
	svc, db := setupTestService(t)
	med := createTestMedication(t, db, "owner-2")
	router := newTestRouter(svc, "owner-1")

	body := `{"issued_at":"2026-01-10","items":[{"description":"1 box","medication_id":"` + med.ID + `"}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prescriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
}

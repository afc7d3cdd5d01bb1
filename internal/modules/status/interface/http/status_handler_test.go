package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"RoastMe/internal/modules/status/application/service"
	"RoastMe/internal/modules/status/domain/entity"
	"RoastMe/internal/modules/status/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newStatusRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&entity.StatusCheck{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStatusHandler(service.NewStatusService(persistence.NewStatusCheckRepository(db)))
	r.POST("/api/status", h.CreateStatusCheck)
	r.GET("/api/status", h.ListStatusChecks)
	return r
}

func TestStatusEndpoints(t *testing.T) {
	r := newStatusRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{"client_name":"probe"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"client_name":"probe"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"client_name":"probe"`)
}

func TestCreateStatusCheckMissingClientName(t *testing.T) {
	r := newStatusRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

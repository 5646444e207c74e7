package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"energy-tracker-backend/config"
	"energy-tracker-backend/internal/model"
	"energy-tracker-backend/internal/store"
)

func setupTestRouter(t *testing.T, name string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&model.Device{}, &model.Consumption{}))

	cfg := &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 60,
	}
	return NewRouter(store.NewGormStore(testDB), cfg)
}

func TestCreateThenListDevice(t *testing.T) {
	router := setupTestRouter(t, "api_devices")

	body := `{"name":"Washing Machine","wattage":1000,"startTime":"08:00","endTime":"10:00"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/devices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var created model.Device
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID, "create should return a server-assigned identifier")
	assert.Equal(t, "Washing Machine", created.Name)
	assert.Equal(t, 1000.0, created.Wattage)
	assert.Equal(t, "08:00", created.StartTime)
	assert.Equal(t, "10:00", created.EndTime)

	// The created device appears in a subsequent list with identical fields.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/devices", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var devices []model.Device
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &devices))
	require.Len(t, devices, 1)
	assert.Equal(t, created, devices[0])
}

func TestListDevicesEmpty(t *testing.T) {
	router := setupTestRouter(t, "api_devices_empty")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/devices", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateDeviceUndecodableBody(t *testing.T) {
	router := setupTestRouter(t, "api_devices_bad_body")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/devices", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDeviceDoesNotValidateFields(t *testing.T) {
	router := setupTestRouter(t, "api_devices_no_validation")

	// Negative wattage and malformed times persist as-is.
	body := `{"name":"","wattage":-42,"startTime":"junk","endTime":""}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/devices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var created model.Device
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, -42.0, created.Wattage)
	assert.Equal(t, "junk", created.StartTime)
}

func TestCreateInvalidatesListCache(t *testing.T) {
	router := setupTestRouter(t, "api_devices_cache")

	// Prime the GET cache with an empty list.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/devices", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	body := `{"name":"Fan","wattage":60,"startTime":"12:00","endTime":"13:00"}`
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/devices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// The create must be visible to the next list despite the cache.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/devices", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var devices []model.Device
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &devices))
	assert.Len(t, devices, 1)
}

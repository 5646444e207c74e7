package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-tracker-backend/internal/model"
)

// createDeviceRequest carries the device fields minus the identifier. No
// field is validated; whatever arrives is persisted as-is.
type createDeviceRequest struct {
	Name      string  `json:"name"`
	Wattage   float64 `json:"wattage"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
}

// ListDevices handles the GET /devices request.
func (h *Handler) ListDevices(c *gin.Context) {
	devices, err := h.store.ListDevices(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve devices"})
		return
	}
	if devices == nil {
		devices = []model.Device{}
	}
	c.JSON(http.StatusOK, devices)
}

// CreateDevice handles the POST /devices request and returns the persisted
// record including its generated identifier.
func (h *Handler) CreateDevice(c *gin.Context) {
	var req createDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Failed to decode request body"})
		return
	}

	device := model.Device{
		Name:      req.Name,
		Wattage:   req.Wattage,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.store.CreateDevice(c.Request.Context(), &device); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create device"})
		return
	}

	c.JSON(http.StatusOK, device)
}

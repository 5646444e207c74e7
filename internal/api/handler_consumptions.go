package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-tracker-backend/internal/model"
)

// createConsumptionRequest carries the consumption fields minus the
// identifier. The deviceId reference is not checked for existence.
type createConsumptionRequest struct {
	DeviceID        string  `json:"deviceId"`
	KWh             float64 `json:"kWh"`
	Cost            float64 `json:"cost"`
	CarbonFootprint float64 `json:"carbonFootprint"`
	Date            string  `json:"date"`
}

// ListConsumptions handles the GET /consumptions request.
func (h *Handler) ListConsumptions(c *gin.Context) {
	consumptions, err := h.store.ListConsumptions(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve consumptions"})
		return
	}
	if consumptions == nil {
		consumptions = []model.Consumption{}
	}
	c.JSON(http.StatusOK, consumptions)
}

// CreateConsumption handles the POST /consumptions request and returns the
// persisted record including its generated identifier.
func (h *Handler) CreateConsumption(c *gin.Context) {
	var req createConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Failed to decode request body"})
		return
	}

	consumption := model.Consumption{
		DeviceID:        req.DeviceID,
		KWh:             req.KWh,
		Cost:            req.Cost,
		CarbonFootprint: req.CarbonFootprint,
		Date:            req.Date,
	}
	if err := h.store.CreateConsumption(c.Request.Context(), &consumption); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create consumption"})
		return
	}

	c.JSON(http.StatusOK, consumption)
}

package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"energy-tracker-backend/config"
	"energy-tracker-backend/internal/mw"
	"energy-tracker-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	r.Use(rateLimiter, caching)

	r.GET("/devices", handler.ListDevices)
	r.POST("/devices", handler.CreateDevice)

	r.GET("/consumptions", handler.ListConsumptions)
	r.POST("/consumptions", handler.CreateConsumption)

	return r
}

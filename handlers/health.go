package handlers

import (
	"net/http"

	"bookingschedule/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler reports reachability of the store and cache. Nil clients
// (memory driver, cache disabled) are not checked.
type HealthHandler struct {
	Mongo *mongo.Client
	Redis *redis.Client
}

// HealthCheckHandler handles GET /health.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(), h.Mongo, h.Redis)
	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": status})
}

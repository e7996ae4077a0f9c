package attendance

import (
	"go-attend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the attendance endpoints. The mutating routes
// go through the idempotency middleware so retried submissions replay
// the original response instead of hitting the unique constraint.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, redisClient *redis.Client) {
	records := r.Group("/attendance")
	records.Use(middleware.AuthMiddleware())
	{
		records.GET("", h.List)
		records.GET("/summary", h.DailySummary)

		records.POST("", middleware.Idempotency(redisClient), h.AddManual)
		records.POST("/clock-in", middleware.Idempotency(redisClient), h.ClockIn)
		records.POST("/clock-out", middleware.Idempotency(redisClient), h.ClockOut)

		records.PATCH("/:id", h.Update)
		records.POST("/:id/archive", h.Archive)
		records.POST("/:id/unarchive", h.Unarchive)
		records.DELETE("/:id", h.Delete)
	}
}

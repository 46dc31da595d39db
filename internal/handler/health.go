package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// Health reports liveness of the backing services. The endpoint is public
// and never exposes credentials or connection details.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return healthWith(
		func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	)
}

func healthWith(pingPostgres, pingRedis func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		checks := gin.H{
			"postgres": checkStatus(pingPostgres(ctx)),
			"redis":    checkStatus(pingRedis(ctx)),
		}

		status := http.StatusOK
		overall := "ok"
		for _, v := range checks {
			if v != "up" {
				status = http.StatusServiceUnavailable
				overall = "degraded"
			}
		}

		c.JSON(status, gin.H{
			"status":  overall,
			"service": "invencost",
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
			"checks":  checks,
		})
	}
}

func checkStatus(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}

package handler

import (
	"context"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var startTime = time.Now()

func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if err := utils.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "down"
	}

	status := "healthy"
	code := 200
	if dbStatus == "down" {
		status = "degraded"
		code = 503
	}

	c.JSON(code, gin.H{
		"status":         status,
		"database":       dbStatus,
		"uptime_seconds": int(time.Since(startTime).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}

package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-hrgen/internal/datasetapi"
	"go-hrgen/internal/generator"
	"go-hrgen/internal/messaging/kafka"
	"go-hrgen/internal/middleware"
)

type moduleDeps struct {
	gen         generator.Service
	rdb         *redis.Client
	kafkaWriter *segmentio.Writer
}

func registerModules(router *gin.Engine, deps moduleDeps) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(10), 20))

	var publisher kafka.EventPublisher
	if deps.kafkaWriter != nil {
		publisher = kafka.NewEventPublisher(deps.kafkaWriter)
	}

	// --- Services ---
	datasetService := datasetapi.NewService(deps.gen, deps.rdb, publisher, zap.L())

	// --- Handlers ---
	datasetHandler := datasetapi.NewHandler(datasetService, zap.L())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		datasetapi.RegisterRoutes(api, datasetHandler)
	}

	return nil
}

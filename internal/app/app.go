package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hrgen/internal/generator"
	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/connection"
)

// BuildApp wires reference data, the generation engine and the HTTP modules
// onto the router. Redis and Kafka are optional: when their addresses are not
// configured the API runs without caching and without event publication.
func BuildApp(router *gin.Engine) error {
	bundle, err := refdata.Load()
	if err != nil {
		return err
	}
	zap.L().Info("reference data loaded",
		zap.Int("org_units", len(bundle.OrgUnits)),
		zap.Int("job_roles", len(bundle.JobRoles)),
		zap.Int("locations", len(bundle.Locations)),
	)

	genService := generator.NewService(bundle, zap.L())

	deps := moduleDeps{gen: genService}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		zap.L().Info("redis connection established", zap.String("addr", addr))
		deps.rdb = rdb
	}

	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(broker, 5)
		if err != nil {
			return err
		}
		zap.L().Info("kafka connection established", zap.String("broker", broker))
		deps.kafkaWriter = writer
	}

	return registerModules(router, deps)
}

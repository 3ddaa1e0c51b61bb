package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"energialab.xyz/energy-monitor-service/pkg/common"
	"energialab.xyz/energy-monitor-service/pkg/db"
	"energialab.xyz/energy-monitor-service/pkg/energy"
	energyHttp "energialab.xyz/energy-monitor-service/pkg/http"
	"energialab.xyz/energy-monitor-service/pkg/ingest"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	energyDbType := os.Getenv(common.EnvKeyEnergyDBType)
	switch energyDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown ENERGY_DB_TYPE: " + energyDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyEnergyHttpHostPort))
	brokerUrl := strings.TrimSpace(os.Getenv(common.EnvKeyEnergyMqttBrokerUrl))
	topic := strings.TrimSpace(os.Getenv(common.EnvKeyEnergyMqttTopic))
	clientId := strings.TrimSpace(os.Getenv(common.EnvKeyEnergyMqttClientId))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyEnergyDefaultRate), 64); err != nil {
		log.Fatal("Invalid ENERGY_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyEnergyDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid ENERGY_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	energyCore := energy.Energy{
		Db: *dbInstance,
	}
	energyCore.WithServices(energy.ServiceOpts{
		Reading:   energyCore.GetIReading(),
		Catalog:   energyCore.GetICatalog(),
		Aggregate: energyCore.GetIAggregate(),
		Quality:   energyCore.GetIQuality(),
	})

	// The ingestor is owned here: constructed once, started once, stopped
	// on shutdown. Nothing else in the process can reach it.
	var ingestor *ingest.Ingestor
	if brokerUrl != "" {
		if topic == "" {
			topic = "energy/medicao"
		}
		if clientId == "" {
			clientId = "energy-monitor-service"
		}

		ingestor = &ingest.Ingestor{
			Energy:           &energyCore,
			RateLimiterStore: ingest.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
			BrokerURL:        brokerUrl,
			Topic:            topic,
			ClientID:         clientId,
		}

		logger.Info("Starting MQTT ingestor",
			zap.String("broker", brokerUrl), zap.String("topic", topic))
		if err := ingestor.Start(); err != nil {
			log.Fatalf("ingestor failed to start: %v", err)
		}
	} else {
		logger.Info("No ENERGY_MQTT_BROKER_URL set, ingestion disabled")
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &energyHttp.RestfulServer{
		Server: gin.Default(),
		Energy: &energyCore,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	httpErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server on: " + httpHostPort)
		httpErr <- rs.Server.Run(httpHostPort)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-httpErr:
		if ingestor != nil {
			ingestor.Stop()
		}
		log.Fatalf("http server failed to serve: %v", err)
	case sig := <-stop:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
		if ingestor != nil {
			ingestor.Stop()
		}
	}
}

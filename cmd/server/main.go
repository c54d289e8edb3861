package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"opendom.xyz/home-automation-service/pkg/auth"
	"opendom.xyz/home-automation-service/pkg/common"
	"opendom.xyz/home-automation-service/pkg/db"
	"opendom.xyz/home-automation-service/pkg/feed"
	"opendom.xyz/home-automation-service/pkg/hub"
	hubHttp "opendom.xyz/home-automation-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	hubDbType := os.Getenv(common.EnvKeyHubDBType)
	switch hubDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown HUB_DB_TYPE: " + hubDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHubHttpHostPort))
	feedBaseURL := strings.TrimSpace(os.Getenv(common.EnvKeyHubFeedBaseURL))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyHubDefaultRate), 64); err != nil {
		log.Fatal("Invalid HUB_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyHubDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid HUB_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	tokenSecret := os.Getenv(common.EnvKeyHubTokenSecret)
	if tokenSecret == "" {
		log.Fatal("HUB_TOKEN_SECRET not set in .env")
	}

	logger := common.GetLogger()

	authService := auth.NewService(
		tokenSecret,
		os.Getenv(common.EnvKeyHubAuthUsername),
		os.Getenv(common.EnvKeyHubAuthPassword),
		os.Getenv(common.EnvKeyHubRootPassword),
	)

	feedClient := feed.New(feedBaseURL)

	hubCore := hub.New(*dbInstance)
	hubCore.Store = hub.NewGormConfigStore(*dbInstance)
	hubCore.Auth = authService
	hubCore.WithServices(hub.ServiceOpts{
		Registry:  hubCore.GetIRegistry(),
		Telemetry: hubCore.GetITelemetry(),
		Alert:     hubCore.GetIAlert(),
		Rules:     hubCore.GetIRules(),
		Config:    hubCore.GetIConfig(),
	})

	ctx := context.Background()

	doc, err := hubCore.Store.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	hubCore.Registry.ReplaceAll(doc)
	logger.Info("Configuration loaded",
		zap.Int("devices", len(doc.Devices)),
		zap.Int("rules", len(doc.Rules)),
		zap.Int64("revision", doc.Revision))

	if feedBaseURL != "" {
		poller := hub.NewPoller(feedClient, hubCore.Telemetry)
		poller.Start(ctx)
		defer poller.Stop()
		logger.Info("Telemetry poller started", zap.String("feed", feedBaseURL))
	} else {
		logger.Warn("HUB_FEED_BASE_URL not set, telemetry polling disabled")
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &hubHttp.RestfulServer{
		Server:           gin.Default(),
		Hub:              hubCore,
		Auth:             authService,
		Commander:        feedClient,
		RateLimiterStore: hub.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}

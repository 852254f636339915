package main

import (
	"context"
	"flag"
	"fmt"

	"terrasense-service/config"
	"terrasense-service/database"
	"terrasense-service/handlers"
	"terrasense-service/middleware"
	"terrasense-service/rabbitmq"
	"terrasense-service/services"
	"terrasense-service/utils"
	"terrasense-service/version"

	"github.com/apex/log"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	EndPointHealth            = "/health"
	EndPointLandData          = "/landdata"
	EndPointLandDataByRegion  = "/landdata/region/:region"
	EndPointDegradationStats  = "/landdata/stats/degradation"
	EndPointReforestation     = "/reforestation"
	EndPointReforestationByID = "/reforestation/:id"
	EndPointProjectStats      = "/reforestation/stats/overall"
	EndPointAlerts            = "/alerts"
	EndPointAlertStatus       = "/alerts/:id/status"
	EndPointAlertSeverity     = "/alerts/active/severity"
	EndPointAlertMap          = "/alerts/map"
	EndPointAlertGeoJSON      = "/alerts/geojson"
	EndPointUsers             = "/users"
	EndPointUserByEmail       = "/users/email/:email"
	EndPointContributions     = "/users/:id/contributions"
	EndPointRoleStats         = "/users/stats/role"
	EndPointDashboard         = "/analytics/dashboard"
	EndPointPredict           = "/analytics/predict"
	EndPointTimeSeries        = "/analytics/timeseries/:region"
)

var seedFlag = flag.Bool("seed", false, "Wipe the database and insert the sample fixture set, then exit")

func main() {
	flag.Parse()

	// Load .env if present; environment variables may also come from the
	// deployment.
	if err := godotenv.Load(); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	log.Info("Starting the TerraSense service...")

	// Connect to database
	db, err := utils.DBConnect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize database schema
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	if *seedFlag {
		if err := database.Seed(context.Background(), db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		return
	}

	// Initialize services
	landService := database.NewLandService(db)
	projectService := database.NewProjectService(db)
	alertService := database.NewAlertService(db)
	userService := database.NewUserService(db)
	dashboardService := database.NewDashboardService(landService, alertService, projectService, userService)

	// Live alert feed
	hub := services.NewAlertHub()
	go hub.Start()

	// Optional notification queue
	var publisher *rabbitmq.Publisher
	if cfg.AMQPUrl != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.AMQPUrl, cfg.AlertExchangeName, cfg.AlertRoutingKey)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		log.Infof("Publishing alert events to exchange %s", cfg.AlertExchangeName)
	}

	// Initialize handlers
	landHandler := handlers.NewLandHandler(landService, cfg)
	projectHandler := handlers.NewProjectHandler(projectService, cfg)
	alertHandler := handlers.NewAlertHandler(alertService, hub, publisher, cfg)
	userHandler := handlers.NewUserHandler(userService, cfg)
	analyticsHandler := handlers.NewAnalyticsHandler(dashboardService, landService, cfg)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// Setup router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.NoRoute(handlers.NotFoundRoute)

	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, version.Get("terrasense-service"))
	})

	// Live alert feed (outside the rate-limited API group)
	router.GET("/ws/alerts", wsHandler.ListenAlerts)

	// Create API router group
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitWindowSec, cfg.RateLimitMax)
	api := router.Group("/api", rateLimiter.Middleware())
	{
		api.GET(EndPointHealth, handlers.HealthCheck)

		api.GET(EndPointLandData, landHandler.ListLandData)
		api.GET(EndPointLandDataByRegion, landHandler.ListByRegion)
		api.POST(EndPointLandData, landHandler.CreateLandData)
		api.GET(EndPointDegradationStats, landHandler.DegradationStats)

		api.GET(EndPointReforestation, projectHandler.ListProjects)
		api.POST(EndPointReforestation, projectHandler.CreateProject)
		api.PUT(EndPointReforestationByID, projectHandler.UpdateProject)
		api.GET(EndPointProjectStats, projectHandler.OverallStats)

		api.GET(EndPointAlerts, alertHandler.ListAlerts)
		api.POST(EndPointAlerts, alertHandler.CreateAlert)
		api.PATCH(EndPointAlertStatus, alertHandler.UpdateAlertStatus)
		api.GET(EndPointAlertSeverity, alertHandler.ActiveSeverityStats)
		api.GET(EndPointAlertMap, alertHandler.MapAlerts)
		api.GET(EndPointAlertGeoJSON, alertHandler.GeoJSONAlerts)

		api.GET(EndPointUsers, userHandler.ListUsers)
		api.POST(EndPointUsers, userHandler.CreateUser)
		api.GET(EndPointUserByEmail, userHandler.GetUserByEmail)
		api.PATCH(EndPointContributions, userHandler.UpdateContributions)
		api.GET(EndPointRoleStats, userHandler.RoleStats)

		api.GET(EndPointDashboard, analyticsHandler.Dashboard)
		api.POST(EndPointPredict, analyticsHandler.Predict)
		api.GET(EndPointTimeSeries, analyticsHandler.TimeSeries)
	}

	// Start server
	log.Infof("TerraSense service starting on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

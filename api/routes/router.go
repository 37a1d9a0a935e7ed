// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staybook/internal/analytics"
	"staybook/internal/availability"
	"staybook/internal/blocks"
	"staybook/internal/calendar"
	"staybook/internal/history"
	"staybook/internal/notifications"
	"staybook/internal/pricing"
	"staybook/internal/reservations"
	"staybook/internal/resources"
	"staybook/internal/shared/config"
	"staybook/internal/shared/database"
	"staybook/pkg/cache"
	"staybook/pkg/logger"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB
	log    *logger.Logger

	// Services kept for cross-module injection
	cacheService       cache.Service
	resourceService    resources.Service
	pricingService     pricing.Service
	blockService       blocks.Service
	reservationService reservations.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, log *logger.Logger) *Router {
	return &Router{
		config: cfg,
		db:     db,
		log:    log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	r.cacheService = cache.NewService(r.db.GetRedisClient())

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupResourceRoutes(api)
		r.setupPricingRoutes(api)
		r.setupSchedulingRoutes(api)
		r.setupAvailabilityRoutes(api)
		r.setupCalendarRoutes(api)
		r.setupAnalyticsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "staybook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "staybook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupResourceRoutes configures property, section and resource routes
func (r *Router) setupResourceRoutes(rg *gin.RouterGroup) {
	resourceRepo := resources.NewRepository(r.db.GetPostgreSQL())
	r.resourceService = resources.NewService(resourceRepo)
	resourceController := resources.NewController(r.resourceService)

	resources.SetupResourceRoutes(rg, resourceController)
}

// setupPricingRoutes configures seasonal price management routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	pricingRepo := pricing.NewRepository(r.db.GetPostgreSQL())
	r.pricingService = pricing.NewService(pricingRepo, r.resourceService)
	pricingController := pricing.NewController(r.pricingService)

	pricing.SetupPricingRoutes(rg, pricingController)
}

// setupSchedulingRoutes configures reservation and block routes. The two
// services reference each other through narrow interfaces, so both are
// constructed first and cross-injected afterwards.
func (r *Router) setupSchedulingRoutes(rg *gin.RouterGroup) {
	historyRepo := history.NewRepository(r.db.GetPostgreSQL())
	historyService := history.NewService(historyRepo)

	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	r.reservationService = reservations.NewService(reservationRepo, r.resourceService, historyService, r.pricingService)

	blockRepo := blocks.NewRepository(r.db.GetPostgreSQL())
	r.blockService = blocks.NewService(blockRepo)

	// Cross-wire: blocks consult reservations before closing a window,
	// reservations consult blocks before booking one.
	r.blockService.SetReservationGuard(r.reservationService)
	r.reservationService.SetBlockService(r.blockService)

	r.blockService.SetCacheService(r.cacheService)
	r.reservationService.SetCacheService(r.cacheService)

	if r.config.Kafka.Enabled {
		producerConfig := notifications.DefaultKafkaProducerConfig()
		producerConfig.Brokers = r.config.Kafka.Brokers
		producerConfig.Topic = r.config.Kafka.Topic

		producer, err := notifications.NewKafkaProducer(producerConfig, r.log)
		if err != nil {
			r.log.Error("Failed to initialize Kafka producer, continuing without events", "error", err)
		} else {
			r.reservationService.SetEventProducer(producer)
		}
	}

	reservationController := reservations.NewController(r.reservationService)
	reservations.SetupReservationRoutes(rg, reservationController)

	blockController := blocks.NewController(r.blockService)
	blocks.SetupBlockRoutes(rg, blockController)
}

// setupAvailabilityRoutes configures the day-availability resolver routes
func (r *Router) setupAvailabilityRoutes(rg *gin.RouterGroup) {
	availabilityService := availability.NewService(r.resourceService, r.blockService, availability.Config{
		DefaultOpenTime:    r.config.Scheduling.DefaultOpenTime,
		DefaultCloseTime:   r.config.Scheduling.DefaultCloseTime,
		DefaultTimezone:    r.config.Scheduling.DefaultTimezone,
		DefaultSlotMinutes: r.config.Scheduling.DefaultSlotMinutes,
	})
	availabilityService.SetCacheService(r.cacheService)
	availabilityController := availability.NewController(availabilityService)

	availability.SetupAvailabilityRoutes(rg, availabilityController)
}

// setupCalendarRoutes configures the month aggregation routes
func (r *Router) setupCalendarRoutes(rg *gin.RouterGroup) {
	calendarService := calendar.NewService(r.reservationService, r.blockService, r.pricingService)
	calendarService.SetCacheService(r.cacheService)
	calendarController := calendar.NewController(calendarService)

	calendar.SetupCalendarRoutes(rg, calendarController)
}

// setupAnalyticsRoutes configures property stats routes
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	analyticsService := analytics.NewService(analyticsRepo)
	analyticsService.SetCacheService(r.cacheService)
	analyticsController := analytics.NewController(analyticsService)

	analytics.SetupAnalyticsRoutes(rg, analyticsController)
}

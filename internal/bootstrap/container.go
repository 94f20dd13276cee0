package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-travelmate-be/internal/config"
	"ai-travelmate-be/internal/controller"
	"ai-travelmate-be/internal/handler"
	"ai-travelmate-be/internal/pkg/logger"
	"ai-travelmate-be/internal/repository/memory"
	"ai-travelmate-be/internal/repository/unitofwork"
	"ai-travelmate-be/internal/service"
	"ai-travelmate-be/internal/websocket"
	"ai-travelmate-be/pkg/transit"

	pktNats "ai-travelmate-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	CatalogController   controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Alerts
	AlertHandler *handler.AlertHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// In-Memory Session Storage
	sessionTTL := time.Duration(cfg.Assistant.SessionTTLMinutes) * time.Minute
	sessionRepo := memory.NewSessionRepository(sessionTTL)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/alerts.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Domain Components
	cacheTTL := time.Duration(cfg.Assistant.CatalogCacheTTLSeconds) * time.Second
	transitFinder := transit.NewFinder(uowFactory, rdb, cacheTTL, sysLogger)

	publisherService := service.NewPublisherService(cfg.Assistant.SearchTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Assistant.SearchTopic,
		uowFactory,
	)

	assistantService := service.NewAssistantService(
		cfg,
		uowFactory,
		sessionRepo,
		transitFinder,
		natsPub,
		publisherService,
		sysLogger,
	)
	catalogService := service.NewCatalogService(uowFactory)

	// 3.5 Alert System
	alertService := service.NewAlertService(uowFactory, natsSub, wsHub, sessionTTL, wsLogger) // Hub implements AlertDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go alertService.Start()
	}

	// Handler
	alertHandler := handler.NewAlertHandler(natsPub, wsHub, wsLogger)

	// 4. Controllers
	// Note: We return the container with public fields for the server to register
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		CatalogController:   controller.NewCatalogController(catalogService),

		AlertHandler: alertHandler,
		WebSocketHub: wsHub,

		ConsumerService: consumerService,
	}
}

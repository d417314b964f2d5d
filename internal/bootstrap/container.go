package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/config"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/constant"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/controller"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/logger"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/mailer"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/memory"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/unitofwork"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/service"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/websocket"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/llm/factory"
	pktNats "github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/nats"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	ChatController     controller.IChatController
	WellnessController controller.IWellnessController

	// Background Services (Exposed for main.go to run)
	CrisisAlertService service.ICrisisAlertService

	// WebSockets
	WebSocketHub *websocket.Hub

	// Logger (Exposed for the server error handler)
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Completion Provider
	provider, err := factory.NewCompletionProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
		time.Duration(cfg.Ai.ProviderTimeoutS)*time.Second,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize completion provider: %v", err)
	}
	log.Printf("[INFO] Using completion provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory conversation creation locks
	creationLocks := memory.NewCreationLockRepository()

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
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

	// WebSocket Hub for admin crisis dashboards
	alertLogger := logger.NewIsolatedLogger(cfg.App.AlertLogFilePath)
	wsHub := websocket.NewHub(rdb, alertLogger)
	go wsHub.Run()

	// 5. Services
	chatService := service.NewChatService(
		uowFactory,
		provider,
		time.Duration(cfg.Ai.ProviderTimeoutS)*time.Second,
		creationLocks,
		pubSub,
		sysLogger,
	)
	authService := service.NewAuthService(uowFactory)
	wellnessService := service.NewWellnessService(uowFactory)
	crisisAlertService := service.NewCrisisAlertService(
		pubSub,
		constant.CrisisAlertTopic,
		emailService,
		natsPub,
		wsHub,
		cfg.Alerts.AdminEmail,
		alertLogger,
	)

	// 6. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		ChatController:     controller.NewChatController(chatService),
		WellnessController: controller.NewWellnessController(wellnessService),
		CrisisAlertService: crisisAlertService,
		WebSocketHub:       wsHub,
		Logger:             sysLogger,
	}
}

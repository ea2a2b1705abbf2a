package bootstrap

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"laundryops-bot/internal/config"
	"laundryops-bot/internal/controller"
	"laundryops-bot/internal/pkg/logger"
	"laundryops-bot/internal/repository/contract"
	"laundryops-bot/internal/repository/implementation"
	"laundryops-bot/internal/repository/memory"
	"laundryops-bot/internal/repository/redisstore"
	"laundryops-bot/internal/repository/unitofwork"
	"laundryops-bot/internal/service"
	"laundryops-bot/pkg/booking"
	"laundryops-bot/pkg/embedding"
	"laundryops-bot/pkg/llm/factory"
	"laundryops-bot/pkg/rag/retriever"
	"laundryops-bot/pkg/telegram"
)

type Container struct {
	WebhookController controller.IWebhookController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "openai" {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. Session storage: Redis survives redeploys, memory is the default.
	var sessions contract.SessionStore
	var locker contract.ChatLocker
	if cfg.Session.Store == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Failed to parse Redis URL: %v", err)
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessions = redisstore.NewSessionStore(rdb, cfg.Session.RedisKeyBase, cfg.Session.StaleAfter)
		locker = memory.NewChatLocker()
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		memStore := memory.NewSessionStore(cfg.Session.StaleAfter, cfg.Session.SweepEvery)
		sessions = memStore
		locker = memStore
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// 4. Outbound Telegram
	sender, err := telegram.NewSender(cfg.Telegram.BotToken, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Telegram sender: %v", err)
	}

	// 5. Services
	faqRepo := implementation.NewFaqDocumentRepository(db)
	faqRetriever := retriever.NewRetriever(embeddingProvider, faqRepo, retriever.DefaultTopK)

	bookingService := service.NewBookingService(uowFactory, cfg.Booking.ExpressSurcharge, sysLogger)
	trackingService := service.NewTrackingService(uowFactory)
	ragService := service.NewRagService(faqRetriever, llmProvider, sysLogger)
	orderQueryService := service.NewOrderQueryService(trackingService, llmProvider, sysLogger)

	chatbotService := service.NewChatbotService(
		sessions,
		locker,
		bookingService,
		trackingService,
		ragService,
		orderQueryService,
		booking.Policy{
			ServicedCity:     cfg.Booking.ServicedCity,
			DefaultWeightKg:  cfg.Booking.DefaultWeightKg,
			ExpressSurcharge: cfg.Booking.ExpressSurcharge,
			MinWeightKg:      cfg.Booking.MinWeightKg,
			MaxWeightKg:      cfg.Booking.MaxWeightKg,
		},
		sysLogger,
	)

	return &Container{
		WebhookController: controller.NewWebhookController(chatbotService, sender, sysLogger),
		Logger:            sysLogger,
	}
}

package bootstrap

import (
	"log"

	"techstore-ai-be/internal/config"
	"techstore-ai-be/internal/controller"
	"techstore-ai-be/internal/pkg/logger"
	"techstore-ai-be/internal/repository/implementation"
	"techstore-ai-be/internal/repository/memory"
	"techstore-ai-be/internal/service"
	"techstore-ai-be/pkg/chat/facts"
	"techstore-ai-be/pkg/chat/history"
	"techstore-ai-be/pkg/intent"
	"techstore-ai-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController    controller.IHealthController
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	ProductController   controller.IProductController
	TechModelController controller.ITechModelController
	ChatController      controller.IChatController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	productRepo := implementation.NewProductRepository(db)
	userRepo := implementation.NewUserRepository(db)
	saleRepo := implementation.NewSaleRepository(db)
	techModelRepo := implementation.NewTechModelRepository(db)
	sessionStore := memory.NewSessionStore()

	// LLM provider
	llmProvider, err := factory.NewLLMProvider("groq", cfg.Groq.APIURL, cfg.Groq.APIKey, cfg.Groq.Model)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: Groq (%s)", cfg.Groq.Model)

	// Chat pipeline
	classifier := intent.NewClassifier(llmProvider, sysLogger)
	resolver := facts.NewResolver(productRepo, userRepo, saleRepo)
	summarizer := history.NewSummarizer(llmProvider, sysLogger)

	// Services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, userRepo, saleRepo)
	techModelService := service.NewTechModelService(techModelRepo)
	chatService := service.NewChatService(llmProvider, cfg.Groq.Model, classifier, resolver, summarizer, sessionStore, sysLogger)

	return &Container{
		HealthController:    controller.NewHealthController("Groq", cfg.Groq.Model),
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		ProductController:   controller.NewProductController(productService),
		TechModelController: controller.NewTechModelController(techModelService),
		ChatController:      controller.NewChatController(chatService),
		Logger:              sysLogger,
	}
}

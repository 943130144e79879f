package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/loyaltyloop/loyalty-crm-be/internal/core/analytics"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/auth"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/churn"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/llm"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/recommend"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/handlers"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/repositories"
	"github.com/loyaltyloop/loyalty-crm-be/internal/modules/loyalty/services"
	"github.com/loyaltyloop/loyalty-crm-be/internal/shared/config"
	"github.com/loyaltyloop/loyalty-crm-be/internal/shared/database"
	"github.com/loyaltyloop/loyalty-crm-be/internal/shared/utils"

	_ "github.com/loyaltyloop/loyalty-crm-be/docs"
)

// @title Loyalty CRM API
// @version 1.0
// @description Retail loyalty backend with AI-assisted retention recommendations
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger()
	log.Printf("🚀 Starting loyalty-crm-api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init repositories (use GORM instance)
	clientRepo := repositories.NewClientRepo(db.GORM)
	itemRepo := repositories.NewItemRepo(db.GORM)
	purchaseRepo := repositories.NewPurchaseRepo(db.GORM)
	churnRepo := repositories.NewChurnRepo(db.GORM)

	// Init LLM gateway (multi-provider, degrades to rules when unconfigured)
	gateway := llm.NewGateway(&llm.ProviderConfig{
		Type:      llm.ProviderType(cfg.LLMProvider),
		OpenAIKey: cfg.OpenAIKey,
		GroqKey:   cfg.GroqKey,
		GeminiKey: cfg.GeminiKey,
		Model:     cfg.LLMModel,
	})
	log.Printf("🤖 Using LLM provider: %s (available: %v)", gateway.ProviderName(), gateway.Available())

	// Init recommendation engine
	kb := recommend.NewKnowledgeBase()
	kb.SetPDFExtractor(recommend.NewPDFExtractor())
	builder := recommend.NewContextBuilder(kb, cfg.StoreClimate)
	orchestrator := recommend.NewOrchestrator(gateway, builder)

	// Init services
	authService := auth.NewService(db.GORM, cfg.JWTSecret)
	churnService := services.NewChurnService(clientRepo, purchaseRepo, churnRepo)
	clientService := services.NewClientService(clientRepo)
	itemService := services.NewItemService(itemRepo)
	purchaseService := services.NewPurchaseService(purchaseRepo, clientRepo, churnService)
	aiService := services.NewAIService(orchestrator, clientRepo, purchaseRepo, churnRepo, churnService)
	analyticsService := services.NewAnalyticsService(analytics.NewAggregator(db.GORM), churnRepo, clientRepo)
	cardService := services.NewCardService(cfg.PublicURL)

	// Nightly churn sweep keeps scores fresh for the batch recommender
	scheduler := churn.NewScheduler()
	err := scheduler.AddJob("churn-sweep", "0 3 * * *", func() {
		owners, err := clientRepo.DistinctOwners()
		if err != nil {
			utils.LogError("churn sweep failed to list owners", err, nil)
			return
		}
		for _, owner := range owners {
			refreshed, err := churnService.RefreshOwner(owner)
			if err != nil {
				utils.LogError("churn sweep failed", err, map[string]interface{}{
					"owner_id": owner.String(),
				})
				continue
			}
			utils.LogInfo("churn sweep finished", map[string]interface{}{
				"owner_id":  owner.String(),
				"refreshed": refreshed,
			})
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule churn sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Init handlers
	authHandler := auth.NewHandler(authService)
	healthHandler := handlers.NewHealthHandler(gateway, scheduler)
	clientHandler := handlers.NewClientHandler(clientService)
	itemHandler := handlers.NewItemHandler(itemService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	aiHandler := handlers.NewAIHandler(aiService)
	kbHandler := handlers.NewKBHandler(kb)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, churnService)
	cardHandler := handlers.NewCardHandler(cardService, clientService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Loyalty CRM API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Auth routes
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/refresh", authHandler.RefreshToken)

	// Everything below requires a valid access token
	protected := app.Use(auth.AuthMiddleware(authService))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Client routes
	protected.Post("/clients", clientHandler.CreateClient)
	protected.Get("/clients", clientHandler.ListClients)
	protected.Get("/clients/:id", clientHandler.GetClient)
	protected.Put("/clients/:id", clientHandler.UpdateClient)
	protected.Delete("/clients/:id", clientHandler.DeleteClient)

	// Loyalty card routes
	protected.Get("/clients/:id/card", cardHandler.GetCard)
	protected.Get("/clients/:id/card.png", cardHandler.GetCardImage)

	// Item routes
	protected.Post("/items", itemHandler.CreateItem)
	protected.Get("/items", itemHandler.ListItems)
	protected.Get("/items/:id", itemHandler.GetItem)
	protected.Put("/items/:id", itemHandler.UpdateItem)
	protected.Delete("/items/:id", itemHandler.DeleteItem)

	// Purchase routes
	protected.Post("/purchases", purchaseHandler.CreatePurchase)
	protected.Get("/purchases", purchaseHandler.ListPurchases)
	protected.Get("/purchases/:id", purchaseHandler.GetPurchase)
	protected.Delete("/purchases/:id", purchaseHandler.DeletePurchase)

	// AI routes
	protected.Get("/ai/recommendations", aiHandler.GetRecommendations)
	protected.Get("/ai/suggestions/:client_id", aiHandler.GetSuggestions)
	protected.Post("/ai/sentiment", aiHandler.AnalyzeSentiment)

	// Knowledge base routes
	protected.Post("/knowledge/documents", kbHandler.AddDocument)
	protected.Post("/knowledge/documents/pdf", kbHandler.UploadPDF)
	protected.Get("/knowledge/documents", kbHandler.ListDocuments)

	// Analytics routes
	protected.Get("/analytics/dashboard", analyticsHandler.GetDashboard)
	protected.Post("/analytics/churn/refresh", analyticsHandler.RefreshChurnScores)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("✅ loyalty-crm-api running at :%s", port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", port)
	log.Fatal(app.Listen(":" + port))
}

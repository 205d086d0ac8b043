package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	c "github.com/callmev1nc/SmartInvest/configs"
	db "github.com/callmev1nc/SmartInvest/database"
	"github.com/callmev1nc/SmartInvest/handlers"
	AdminHandler "github.com/callmev1nc/SmartInvest/handlers/admin"
	AssistantHandler "github.com/callmev1nc/SmartInvest/handlers/assistant"
	MarketHandler "github.com/callmev1nc/SmartInvest/handlers/market"
	ProfileHandler "github.com/callmev1nc/SmartInvest/handlers/profile"
	"github.com/callmev1nc/SmartInvest/middlewares"
	AIRepository "github.com/callmev1nc/SmartInvest/repositories/ai"
	MarketRepository "github.com/callmev1nc/SmartInvest/repositories/market"
	ProfileRepository "github.com/callmev1nc/SmartInvest/repositories/profile"
	StorageRepository "github.com/callmev1nc/SmartInvest/repositories/storage"
	AIService "github.com/callmev1nc/SmartInvest/services/ai"
	"github.com/callmev1nc/SmartInvest/services/cache"
	"github.com/callmev1nc/SmartInvest/services/scheduler"
)

func main() {
	// Environment Variables and Database Connection
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not loaded, using environment variables")
	}

	sqlDB, err := db.Init(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
		return
	}
	defer sqlDB.Close()

	// Core Initialization
	// One scheduler per upstream resource: everything OpenAI goes through it.
	openAIScheduler := scheduler.New(
		c.OPENAI_REQUESTS_PER_MINUTE,
		c.OPENAI_REQUESTS_PER_DAY,
		c.OPENAI_TASK_TIMEOUT,
	)
	ttlCache := cache.NewCache(c.RATE_LIMIT_CACHE_TTL)
	translationCache := cache.NewTranslationCacheService(
		cache.NewMemo(c.TRANSLATION_CACHE_MAX_ENTRIES),
	)
	marketMemory := cache.NewTTLStore(ttlCache, c.MARKET_UPDATE_MEMORY_TTL)

	// Repository Initialization
	pr := ProfileRepository.NewRepository(sqlDB)
	mr := MarketRepository.NewRepository(sqlDB)
	ar := AIRepository.NewRepository(os.Getenv("OPENAI_API_KEY"))

	var sr AIService.Archiver
	if os.Getenv("R2_BUCKET_NAME") != "" {
		sr = StorageRepository.NewRepository(
			os.Getenv("R2_ACCESS_KEY_ID"),
			os.Getenv("R2_ACCESS_KEY_SECRET"),
			os.Getenv("R2_BUCKET_NAME"),
			os.Getenv("R2_ENDPOINT"),
		)
	}

	// Service Initialization
	ais := AIService.NewAIService(ar, openAIScheduler, translationCache, mr, marketMemory, sr)

	// Handler Initialization
	mainHandler := handlers.NewHandler()
	ph := ProfileHandler.NewHandler(pr)
	ah := AssistantHandler.NewHandler(ais, pr)
	mh := MarketHandler.NewHandler(ais)
	adh := AdminHandler.NewHandler(openAIScheduler, ttlCache, translationCache)

	// Middleware Initialization
	rateLimiter := middlewares.NewAIRateLimitMiddleware(ttlCache)

	// Router Initialize
	router := gin.Default()
	router.Use(c.CorsConfig())
	router.Use(c.SecureConfig)

	// Global Routes
	router.GET("/", mainHandler.Index)
	router.NoRoute(mainHandler.NotFound)

	// Profile Routes
	router.POST("/profile", ph.CreateProfile)
	router.GET("/profile/:id", ph.GetProfile)

	// Assistant Routes (per-client rate limit in front of the scheduler)
	assistant := router.Group("/assistant", rateLimiter.RateLimit())
	assistant.POST("/chat", ah.Chat)
	assistant.POST("/translate", ah.Translate)

	// Market Routes
	router.GET("/market/daily", mh.DailyUpdate)

	// Admin Routes
	admin := router.Group("/admin", middlewares.AdminAuthMiddleware())
	admin.GET("/quota", adh.GetQuotaStats)
	admin.GET("/cache/stats", adh.GetCacheStats)
	admin.GET("/cache/items", adh.GetCacheItems)
	admin.POST("/cache/clear-translations", adh.ClearTranslationCache)
	admin.POST("/cache/clear-prefix", adh.ClearCacheWithPrefix)

	// Start Server
	err = router.Run(":" + os.Getenv("PORT"))
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

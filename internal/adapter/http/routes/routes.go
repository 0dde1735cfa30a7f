package routes

import (
	"log"

	_ "skiphire/docs" // generated by swag init
	"skiphire/internal/adapter/http/handlers"
	"skiphire/internal/adapter/persistence/repository"
	"skiphire/internal/config"
	"skiphire/internal/infrastructure/database"
	"skiphire/internal/infrastructure/scheduler"
	"skiphire/internal/infrastructure/skips"
	"skiphire/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg *config.Config) {
	skipSource := skips.NewSkipsAPIClient(cfg.SkipsAPI.URL, cfg.SkipsAPI.Timeout)
	sessionUseCase := usecase.NewBookingSessionUseCase(skipSource, usecase.SessionDefaults{
		Postcode: cfg.Session.DefaultPostcode,
		Area:     cfg.Session.DefaultArea,
		IdleTTL:  cfg.Session.IdleTTL,
	})

	ddb := database.ConnectDynamoDB(cfg.DynamoDB)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.DynamoDB.QuotesTable)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, sessionUseCase)

	sweeper, err := scheduler.NewScheduler(sessionUseCase, cfg.Session.SweepSpec)
	if err != nil {
		log.Fatalf("Failed to configure the session sweep: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	router := NewRouter(
		handlers.NewBookingSessionHandler(sessionUseCase),
		handlers.NewQuoteHandler(quoteUseCase),
	)

	log.Printf("[booking][server] listening addr=%s skips_api=%s default_location=%s/%s",
		cfg.Addr(), cfg.SkipsAPI.URL, cfg.Session.DefaultPostcode, cfg.Session.DefaultArea)
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func NewRouter(sessionHandler *handlers.BookingSessionHandler, quoteHandler *handlers.QuoteHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, sessionHandler, quoteHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

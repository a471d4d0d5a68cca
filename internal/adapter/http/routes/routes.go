package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "ofair/docs" // This will be auto-generated
	"ofair/internal/adapter/http/handlers"
	"ofair/internal/adapter/http/middleware"
	repository2 "ofair/internal/adapter/persistence/repository"
	"ofair/internal/infrastructure/database"
	"ofair/internal/infrastructure/guard"
	"ofair/internal/infrastructure/media"
	"ofair/internal/infrastructure/payments"
	"ofair/internal/usecase"
	"ofair/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	acceptedRepo := repository2.NewAcceptedQuoteDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	referralRepo := repository2.NewReferralDynamoRepository(ddb)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	opGuard := guard.NewRedisOperationGuard(redisClient, 0)

	var mediaStore interfaces.IMediaStore
	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		ms, err := media.NewMinioStore(
			endpoint,
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			getenvDefault("MINIO_BUCKET", "ofair-quote-media"),
			os.Getenv("MINIO_USE_SSL") == "true",
		)
		if err != nil {
			log.Printf("MinIO media store not configured: %v", err)
		} else {
			mediaStore = ms
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notifier := usecase.NewLifecycleNotifier(notificationRepo)
	store := usecase.NewQuoteStore(quoteRepo, acceptedRepo, mediaStore)

	requestUseCase := usecase.NewRequestUseCase(requestRepo, quoteRepo)
	acceptUseCase := usecase.NewAcceptQuoteUseCase(store, quoteRepo, requestRepo, acceptedRepo, referralRepo, paymentGateway, opGuard, notifier)
	rejectUseCase := usecase.NewRejectQuoteUseCase(store, quoteRepo, requestRepo, acceptedRepo, opGuard, notifier)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	startRatingReminder(acceptedRepo, notifier)

	requestHandler := handlers.NewRequestHandler(requestUseCase)
	quoteHandler := handlers.NewQuoteHandler(store, acceptUseCase, rejectUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.Auth())
	addMarketplaceRoutes(authed, requestHandler, quoteHandler, notificationHandler)
}

// startRatingReminder schedules the periodic scan that nudges consumers who
// accepted a quote but never rated the professional.
func startRatingReminder(acceptedRepo interfaces.IAcceptedQuoteRepository, notifier interfaces.ILifecycleNotifier) {
	remindAfter := 24 * time.Hour
	if v := os.Getenv("RATING_REMINDER_AFTER"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			remindAfter = d
		}
	}

	job := usecase.NewRatingReminderJob(acceptedRepo, notifier, remindAfter)
	scheduler := cron.New()
	if _, err := scheduler.AddJob(getenvDefault("RATING_REMINDER_CRON", "@every 15m"), job); err != nil {
		log.Printf("Rating reminder not scheduled: %v", err)
		return
	}
	scheduler.Start()
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

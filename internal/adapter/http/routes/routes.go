package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	_ "salesdesk/docs" // This will be auto-generated
	"salesdesk/internal/adapter/http/handlers"
	repository2 "salesdesk/internal/adapter/persistence/repository"
	"salesdesk/internal/infrastructure/database"
	"salesdesk/internal/infrastructure/payments"
	"salesdesk/internal/usecase"
	"salesdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// defaultWidgets is the initial dashboard widget order; reordering it is
// session-only and lost on restart.
var defaultWidgets = []string{"pipeline", "revenue", "recent-activity", "top-customers", "tasks", "calendar"}

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
	ctx := context.Background()

	storage := connectStorage(ctx)

	quoteStore, err := usecase.NewQuoteStore(ctx, storage)
	if err != nil {
		log.Fatalf("Failed to load quote store: %v", err)
	}
	orderStore, err := usecase.NewOrderStore(ctx, storage)
	if err != nil {
		log.Fatalf("Failed to load order store: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewOrderPaymentUseCase(orderStore, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteStore)
	orderHandler := handlers.NewOrderHandler(orderStore, paymentUseCase)
	boardHandler := handlers.NewBoardHandler(usecase.NewOrderBoard(orderStore), orderStore)
	dashboardHandler := handlers.NewDashboardHandler(usecase.NewWidgetBoard(defaultWidgets))
	eventsHandler := handlers.NewEventsHandler(quoteStore, orderStore)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, quoteHandler, orderHandler, boardHandler, dashboardHandler, eventsHandler)
}

// connectStorage picks the storage adapter from STORAGE_BACKEND:
// file (default), sqlite, dynamodb or memory.
func connectStorage(ctx context.Context) interfaces.IStorageAdapter {
	backend := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_BACKEND")))
	switch backend {
	case "", "file":
		storage, err := repository2.NewFileStorage()
		if err != nil {
			log.Fatalf("Failed to open file storage: %v", err)
		}
		return storage
	case "sqlite":
		storage, err := repository2.NewSQLiteStorage(ctx)
		if err != nil {
			log.Fatalf("Failed to open sqlite storage: %v", err)
		}
		return storage
	case "dynamodb":
		return repository2.NewDynamoStorage(database.ConnectDynamoDB())
	case "memory":
		return repository2.NewMemoryStorage()
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q", backend)
		return nil
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package routes

import (
	"log"
	"os"
	"strconv"

	_ "chatpay/docs" // This will be auto-generated
	"chatpay/internal/adapter/http/handlers"
	repository2 "chatpay/internal/adapter/persistence/repository"
	"chatpay/internal/infrastructure/database"
	"chatpay/internal/infrastructure/messaging"
	"chatpay/internal/infrastructure/payments"
	"chatpay/internal/usecase"

	"github.com/gin-gonic/gin"
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

	flowStore := repository2.NewPaymentFlowDynamoRepository(ddb)
	eventStore := repository2.NewWebhookEventDynamoRepository(ddb)

	paymentGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}
	messagingGateway, err := messaging.NewBirdClientFromEnv()
	if err != nil {
		log.Fatalf("Bird messaging gateway not configured: %v", err)
	}

	orchestrator := usecase.NewPaymentOrchestratorUseCase(flowStore, eventStore, paymentGateway, messagingGateway)

	paymentFlowHandler := handlers.NewPaymentFlowHandler(orchestrator)
	webhookHandler := handlers.NewWebhookHandler(orchestrator, os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentFlowHandler)
	addWebhookRoutes(v1, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

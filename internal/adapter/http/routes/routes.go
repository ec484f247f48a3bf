package routes

import (
	"log"
	"strconv"

	_ "turismo_xpto/docs" // swag-generated swagger registration
	"turismo_xpto/internal/adapter/http/handlers"
	"turismo_xpto/internal/adapter/http/middleware"
	repository2 "turismo_xpto/internal/adapter/persistence/repository"
	"turismo_xpto/internal/infrastructure/database"
	"turismo_xpto/internal/usecase"

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

	costRepo := repository2.NewOperatorCostDynamoRepository(ddb)
	historyRepo := repository2.NewHistoryDynamoRepository(ddb)
	supplierRepo := repository2.NewSupplierDynamoRepository(ddb)
	revenueRepo := repository2.NewRevenueDynamoRepository(ddb)
	serviceTypeRepo := repository2.NewServiceTypeDynamoRepository(ddb)
	userDirectory := repository2.NewUserDirectoryDynamoRepository(ddb)

	costUseCase := usecase.NewOperatorCostUseCase(costRepo)
	historyUseCase := usecase.NewHistoryUseCase(historyRepo, userDirectory)
	balanceUseCase := usecase.NewBalanceUseCase(costRepo, revenueRepo, supplierRepo)
	serviceTypeUseCase := usecase.NewServiceTypeUseCase(serviceTypeRepo)

	costHandler := handlers.NewOperatorCostHandler(costUseCase)
	historyHandler := handlers.NewHistoryHandler(historyUseCase)
	reportHandler := handlers.NewReportHandler(balanceUseCase)
	serviceTypeHandler := handlers.NewServiceTypeHandler(serviceTypeUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything below requires a back-office session.
	secured := v1.Group("", middleware.RequireAuth())
	addBackofficeRoutes(secured, costHandler, historyHandler, reportHandler, serviceTypeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package routes

import (
	"log"
	"strconv"

	_ "projectvoortgang/docs" // swag generated documentation
	"projectvoortgang/internal/adapter/http/handlers"
	repository2 "projectvoortgang/internal/adapter/persistence/repository"
	"projectvoortgang/internal/infrastructure/database"
	"projectvoortgang/internal/infrastructure/warehouse"
	"projectvoortgang/internal/usecase"

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

	opnameRepo := repository2.NewAssessmentDynamoRepository(ddb)
	regelRepo := repository2.NewLineItemDynamoRepository(ddb)

	dwhGateway := warehouse.NewWarehouseFromEnv()

	opnameUseCase := usecase.NewAssessmentUseCase(opnameRepo, regelRepo, dwhGateway)
	regelUseCase := usecase.NewLineItemUseCase(regelRepo, opnameRepo, dwhGateway)

	opnameHandler := handlers.NewOpnameHandler(opnameUseCase)
	regelHandler := handlers.NewRegelHandler(regelUseCase)
	dwhHandler := handlers.NewDWHHandler(dwhGateway)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDWHRoutes(v1, dwhHandler)
	addOpnameRoutes(v1, opnameHandler, regelHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

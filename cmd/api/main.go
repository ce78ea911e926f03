package main

import (
	"log"
	"os"

	_ "revenue/api/swagger" // swagger docs
	"revenue/internal/database"
	"revenue/internal/handler"
	"revenue/internal/model"
	"revenue/internal/repository"
	"revenue/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Municipal Revenue Configuration API
// @version         1.0
// @description     CRUD API for versioned tax and fee rate tables, plus the market stall layout editor.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "revenue"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up dependencies (Repository -> Service -> Handler)
	txMgr := repository.NewTransactionManager(db)
	auditRepo := repository.NewAuditRepository(db)
	marketRepo := repository.NewMarketRepository(db)

	businessService := service.NewBusinessConfigService(
		repository.NewConfigStore[model.BusinessTaxConfig](db, "business-tax"),
		repository.NewConfigStore[model.RegulatoryFeeConfig](db, "regulatory-fee"),
		auditRepo,
	)
	rptService := service.NewRPTConfigService(
		repository.NewConfigStore[model.LandConfig](db, "land"),
		repository.NewConfigStore[model.PropertyConfig](db, "property"),
		repository.NewConfigStore[model.RPTTaxConfig](db, "rpt-tax"),
		auditRepo,
	)
	marketService := service.NewMarketService(marketRepo, txMgr, auditRepo)
	auditService := service.NewAuditService(auditRepo)

	// Initialize Handlers
	businessHandler := handler.NewBusinessConfigHandler(businessService)
	rptHandler := handler.NewRPTConfigHandler(rptService)
	marketHandler := handler.NewMarketHandler(marketService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Register API Routes
	businessHandler.RegisterRoutes(router.Group(""))
	rptHandler.RegisterRoutes(router.Group(""))
	marketHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

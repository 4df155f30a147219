package main

import (
	"log"
	"net/http"
	"nutricheck/database"
	"nutricheck/docs"
	"nutricheck/internal/cache"
	"nutricheck/internal/catalog"
	"nutricheck/internal/controllers"
	"nutricheck/internal/repository"
	"nutricheck/internal/services"
	"nutricheck/routes"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "NutriCheck API"
	docs.SwaggerInfo.Description = "Personal nutrition tracking API with rule-based food evaluation, daily goal calculation and recipe analysis."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database and run migrations
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	foodLogRepo := repository.NewFoodLogRepository(database.DB)
	ingredientRepo := repository.NewIngredientRepository(database.DB)
	jobRepo := repository.NewEvaluationJobRepository(database.DB)

	// Intake cache (Redis). The API works without it, every summary read
	// just goes straight to the database.
	intakeCache, err := cache.NewIntakeCache()
	if err != nil {
		log.Printf("Warning: intake cache unavailable: %v", err)
		intakeCache = nil
	} else {
		defer intakeCache.Close()
	}

	// Decision publisher (RabbitMQ). Optional as well: without it async
	// evaluation results are only available via polling.
	var publisher *services.DecisionPublisher
	rabbitMQURL := os.Getenv("RABBITMQ_URL")
	if rabbitMQURL != "" {
		publisher, err = services.NewDecisionPublisher(rabbitMQURL)
		if err != nil {
			log.Printf("Warning: decision publisher unavailable: %v", err)
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Ingredient catalog: built-in reference table plus persisted custom rows
	ingredientCatalog := catalog.NewIngredientCatalog()
	customRows, err := ingredientRepo.FindAll()
	if err != nil {
		log.Printf("Warning: could not load custom ingredients: %v", err)
	}
	for _, row := range customRows {
		ingredientCatalog.Add(row.Name, catalog.IngredientNutrition{
			Protein:  row.Protein,
			Carbs:    row.Carbs,
			Fat:      row.Fat,
			Sugar:    row.Sugar,
			Sodium:   row.Sodium,
			Calories: row.Calories,
		})
	}
	log.Printf("Ingredient catalog ready with %d entries (%d custom)", ingredientCatalog.Len(), len(customRows))

	// Evaluation job worker
	workerCount := runtime.NumCPU()
	if workerCount < 3 {
		workerCount = 3
	}

	jobWorker := services.NewEvaluationJobWorker(
		jobRepo,
		profileRepo,
		foodLogRepo,
		intakeCache,
		publisher,
		workerCount,
	)

	log.Printf("Starting evaluation job worker with %d workers...", workerCount)
	jobWorker.Start()
	defer jobWorker.Stop()

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo)
	profileController := controllers.NewUserProfileController(profileRepo)
	foodLogController := controllers.NewFoodLogController(foodLogRepo, intakeCache)
	recipeController := controllers.NewRecipeController(ingredientCatalog, ingredientRepo)
	evaluationController := controllers.NewEvaluationController(
		profileRepo,
		foodLogRepo,
		jobRepo,
		jobWorker,
		intakeCache,
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":    "NutriCheck API is running",
			"version":    "1.0.0",
			"status":     "healthy",
			"evaluation": "Sync rule engine + async evaluation jobs",
			"database":   "PostgreSQL",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterSwaggerRoutes(router)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterFoodLogRoutes(router, foodLogController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterEvaluationRoutes(router, evaluationController)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"workers":    workerCount,
		})
	})

	router.GET("/debug/cache", func(c *gin.Context) {
		if intakeCache == nil {
			c.JSON(200, gin.H{"cache_available": false})
			return
		}
		status, err := intakeCache.GetStatus()
		if err != nil {
			c.JSON(500, gin.H{"cache_available": false, "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"cache_available": true, "status": status})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

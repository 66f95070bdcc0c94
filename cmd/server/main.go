package main

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/config"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/domain/fiber/handler"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/middleware"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/repository"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/service"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 12 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	catalogRepo := repository.NewCatalogRepository(db)
	matrixRepo := repository.NewMatrixRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	docRepo := repository.NewCandidateDocumentRepository(db)
	comparisonRepo := repository.NewComparisonRepository(db)

	storage := service.NewStorageService()
	classifier := service.NewClassifierService()
	queue := service.NewQueueService()
	notify := service.NewNotifyService()

	processing := usecase.NewProcessingUsecase(queue, storage, classifier, notify,
		candidateRepo, docRepo, matrixRepo, config.LoadQueueConfig().WorkerBudget)
	upload := usecase.NewUploadUsecase(storage, queue, candidateRepo, docRepo, processing)
	comparison := usecase.NewComparisonUsecase(matrixRepo, docRepo, comparisonRepo, notify)

	h := handler.NewDocumentHandler(upload, processing, comparison, docRepo, catalogRepo, comparisonRepo)
	h.RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.CatalogDocument{},
		&model.Matrix{},
		&model.MatrixDocument{},
		&model.Candidate{},
		&model.CandidateDocument{},
		&model.ComparisonResult{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

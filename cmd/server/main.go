package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/kmazur/tweetvault/configs"
	"github.com/kmazur/tweetvault/internal/api/handlers"
	"github.com/kmazur/tweetvault/internal/api/middleware"
	job "github.com/kmazur/tweetvault/internal/jobs"
	"github.com/kmazur/tweetvault/internal/queue"
	"github.com/kmazur/tweetvault/internal/repository"
	"github.com/kmazur/tweetvault/internal/scraper"
	"github.com/kmazur/tweetvault/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Api-Key",
		MaxAge:       3600,
	}))

	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	scraperClient := scraper.NewClient(cfg.ScraperURL)
	ingestService := service.NewIngestService(profileRepo, postRepo, scraperClient, *cfg)
	profileService := service.NewProfileService(profileRepo, postRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	ingest := handlers.NewIngestHandler(*cfg, client)
	api.Post("/ingest", ingest.TriggerIngest)

	profile := handlers.NewProfileHandler(profileService)
	api.Get("/profiles/:id", profile.GetProfile)
	api.Get("/profiles/:id/posts", profile.ListPosts)

	// cron jobs
	rescrapeJob := job.NewRescrapeJob(ingestService, *cfg)

	// queue
	queueW := queue.NewQueue(ingestService)

	c := cron.New()
	c.AddFunc(cfg.RescrapeCron, rescrapeJob.Rescrape)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 1,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeIngestProfile, queueW.HandleIngestProfileTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/kmazur/tweetvault/configs"
	"github.com/kmazur/tweetvault/internal/repository"
	"github.com/kmazur/tweetvault/internal/scraper"
	"github.com/kmazur/tweetvault/internal/service"
)

// One-shot runner: scrape the configured profile once, ingest the batch and
// print the summary line. A batch that was already ingested is a normal exit.
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

	ctx := context.Background()
	if err := repository.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	scraperClient := scraper.NewClient(cfg.ScraperURL)
	ingestService := service.NewIngestService(profileRepo, postRepo, scraperClient, *cfg)

	log.Printf("Running profile scrape for %s and saving results to database", cfg.ProfileURL)

	report, err := ingestService.IngestProfile(ctx, cfg.ProfileURL, cfg.ScrapeLimit)
	if err != nil {
		closeDB(db)
		log.Fatalf("Ingestion failed: %v", err)
	}

	log.Println(report.Summary())
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

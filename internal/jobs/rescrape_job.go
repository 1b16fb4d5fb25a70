package job

import (
	"context"
	"log"
	"log/slog"

	config "github.com/kmazur/tweetvault/configs"
	"github.com/kmazur/tweetvault/internal/service"
)

// RescrapeJob periodically re-ingests the configured profile. Ingestion is
// idempotent, so a run that finds nothing new only reports a duplicate.
type RescrapeJob struct {
	is  service.IngestService
	cfg config.Config
}

func NewRescrapeJob(is service.IngestService, cfg config.Config) *RescrapeJob {
	return &RescrapeJob{
		is:  is,
		cfg: cfg,
	}
}

func (c *RescrapeJob) Rescrape() {
	ctx := context.Background()

	report, err := c.is.IngestProfile(ctx, c.cfg.ProfileURL, c.cfg.ScrapeLimit)
	if err != nil {
		slog.Error(err.Error())
		return
	}

	log.Println(report.Summary())
}

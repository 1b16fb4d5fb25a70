package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	config "github.com/kmazur/tweetvault/configs"
	"github.com/kmazur/tweetvault/internal/queue"
	"github.com/kmazur/tweetvault/internal/transfer"
)

type IngestHandler struct {
	cfg         config.Config
	AsynqClient *asynq.Client
}

func NewIngestHandler(cfg config.Config, asynqClient *asynq.Client) *IngestHandler {
	return &IngestHandler{cfg: cfg, AsynqClient: asynqClient}
}

func (h *IngestHandler) TriggerIngest(c *fiber.Ctx) error {
	var req transfer.IngestionRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse body",
		})
	}

	if req.ProfileURL == "" {
		req.ProfileURL = h.cfg.ProfileURL
	}
	if req.Limit <= 0 {
		req.Limit = h.cfg.ScrapeLimit
	}

	err := queue.EnqueueIngest(h.AsynqClient, queue.IngestProfilePayload{
		ProfileURL: req.ProfileURL,
		Limit:      req.Limit,
	})
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error scheduling ingestion",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Ingestion scheduled",
	})
}

package queue

import (
	"github.com/kmazur/tweetvault/internal/service"
)

type Queue struct {
	is service.IngestService
}

func NewQueue(is service.IngestService) *Queue {
	return &Queue{
		is: is,
	}
}

const TaskTypeIngestProfile = "ingest:profile"

type IngestProfilePayload struct {
	ProfileURL string `json:"profile_url"`
	Limit      int    `json:"limit"`
}

package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

func (j *Queue) HandleIngestProfileTask(ctx context.Context, task *asynq.Task) error {
	var payload IngestProfilePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	report, err := j.is.IngestProfile(ctx, payload.ProfileURL, payload.Limit)
	if err != nil {
		return err
	}

	log.Println(report.Summary())
	return nil
}

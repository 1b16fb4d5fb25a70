package transfer

import "fmt"

// WriteOutcome is the result of one transactional write attempt.
type WriteOutcome string

const (
	OutcomeCreated       WriteOutcome = "created"
	OutcomeAlreadyExists WriteOutcome = "already_exists"
)

// RunStatus classifies a whole ingestion run from its two write outcomes.
type RunStatus string

const (
	StatusCreated              RunStatus = "created"
	StatusAlreadyExists        RunStatus = "already_exists"
	StatusPartialAlreadyExists RunStatus = "partial_already_exists"
)

type IngestionRequest struct {
	ProfileURL string `json:"profile_url"`
	Limit      int    `json:"limit"`
}

// IngestionReport summarizes one ingestion run.
type IngestionReport struct {
	RunID          string       `json:"run_id"`
	ProfileID      string       `json:"profile_id"`
	RecordCount    int          `json:"record_count"`
	ProfileOutcome WriteOutcome `json:"profile_outcome"`
	PostOutcome    WriteOutcome `json:"post_outcome"`
	PostsPersisted int          `json:"posts_persisted"`
}

// Status derives the run classification: both writes conflicting means the
// batch was fully ingested before, exactly one conflicting means a prior run
// left the store halfway.
func (r *IngestionReport) Status() RunStatus {
	profileDup := r.ProfileOutcome == OutcomeAlreadyExists
	postsDup := r.PostOutcome == OutcomeAlreadyExists

	switch {
	case profileDup && postsDup:
		return StatusAlreadyExists
	case profileDup || postsDup:
		return StatusPartialAlreadyExists
	default:
		return StatusCreated
	}
}

// Summary returns the human-readable one-line outcome of the run.
func (r *IngestionReport) Summary() string {
	if r.Status() == StatusAlreadyExists {
		return fmt.Sprintf("run %s: profile %s already ingested, %d records seen, nothing new persisted", r.RunID, r.ProfileID, r.RecordCount)
	}
	return fmt.Sprintf("run %s: scraped %d records for profile %s (%s), saved %d posts (%s)",
		r.RunID, r.RecordCount, r.ProfileID, r.ProfileOutcome, r.PostsPersisted, r.PostOutcome)
}

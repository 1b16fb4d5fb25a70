package models

// Post is one scraped content item, owned by the Profile referenced through
// OwnerID. CreatedAt holds the canonical minute-precision local-time string
// ("2006-01-02 15:04") produced at ingestion time.
type Post struct {
	ID          string  `db:"id" json:"id"`
	OwnerID     string  `db:"owner_id" json:"owner_id"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	Text        string  `db:"text" json:"text"`
	LikeCount   int     `db:"like_count" json:"like_count"`
	RepostCount int     `db:"repost_count" json:"repost_count"`
	ReplyCount  int     `db:"reply_count" json:"reply_count"`
	QuoteCount  int     `db:"quote_count" json:"quote_count"`
	RawPayload  Payload `db:"raw_payload" json:"raw_payload"`
}

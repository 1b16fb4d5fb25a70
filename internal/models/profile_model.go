package models

// Profile is one scraped account snapshot. Rows are written exactly once; a
// later run that produces the same id is reported as a conflict and the
// existing row is left untouched.
type Profile struct {
	ID             string  `db:"id" json:"id"`
	InternalID     string  `db:"internal_id" json:"internal_id"`
	DisplayName    string  `db:"display_name" json:"display_name"`
	Handle         string  `db:"handle" json:"handle"`
	Bio            string  `db:"bio" json:"bio"`
	Location       string  `db:"location" json:"location"`
	FollowersCount int     `db:"followers_count" json:"followers_count"`
	FollowingCount int     `db:"following_count" json:"following_count"`
	PostsCount     int     `db:"posts_count" json:"posts_count"`
	RawPayload     Payload `db:"raw_payload" json:"raw_payload"`
}

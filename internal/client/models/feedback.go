package models

import "time"

// Comment is a single comment on a recipe. Ordering is owned by the backend
// (newest first); the client only prepends its own freshly created comment.
type Comment struct {
	ID        string    `json:"_id"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Feedback is the rating/comment aggregate for a recipe. MyRating is nil when
// the caller has not rated the recipe or is not logged in.
type Feedback struct {
	AvgRating   float64   `json:"avgRating"`
	RatingCount int       `json:"ratingCount"`
	MyRating    *int      `json:"myRating,omitempty"`
	Comments    []Comment `json:"comments"`
}

// RatingSummary is the authoritative tally returned after submitting a
// rating. The client adopts these numbers verbatim and never recomputes the
// average locally.
type RatingSummary struct {
	MyRating    int     `json:"myRating"`
	AvgRating   float64 `json:"avgRating"`
	RatingCount int     `json:"ratingCount"`
}

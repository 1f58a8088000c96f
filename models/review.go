package models

import "time"

const (
	MinRating        = 1
	MaxRating        = 5
	MaxReviewComment = 1000
)

// Review is a seeker's rating of a provider. At most one per (provider, user).
type Review struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	UserID     string    `bson:"userId" json:"userId"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	IsApproved bool      `bson:"isApproved" json:"isApproved"`
	IsRejected bool      `bson:"isRejected" json:"isRejected"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReviewStats is the raw aggregate over a provider's approved reviews.
type ReviewStats struct {
	Sum   int `bson:"sum"`
	Count int `bson:"count"`
}

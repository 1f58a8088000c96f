package models

import "time"

// Location is where a provider operates from.
type Location struct {
	City  string   `bson:"city" json:"city"`
	State string   `bson:"state" json:"state"`
	Point GeoPoint `bson:"point" json:"point"`
}

// Provider is a registered service professional. The aggregate counters are
// written only by their owning operations (rating recompute, profile views,
// booking creation), never by profile edits.
type Provider struct {
	ID              string      `bson:"id" json:"id"`
	UserID          string      `bson:"userId" json:"userId"`
	BusinessName    string      `bson:"businessName" json:"businessName"`
	Description     string      `bson:"description,omitempty" json:"description,omitempty"`
	CategoryID      string      `bson:"categoryId" json:"categoryId"`
	SubCategorySlug string      `bson:"subCategorySlug,omitempty" json:"subCategorySlug,omitempty"`
	Location        Location    `bson:"location" json:"location"`
	IsActive        bool        `bson:"isActive" json:"isActive"`
	ProfileImage    *MediaAsset `bson:"profileImage,omitempty" json:"profileImage,omitempty"`

	RatingAverage  float64 `bson:"ratingAverage" json:"ratingAverage"`
	TotalReviews   int     `bson:"totalReviews" json:"totalReviews"`
	TotalViews     int     `bson:"totalViews" json:"totalViews"`
	TotalInquiries int     `bson:"totalInquiries" json:"totalInquiries"`
	TotalBookings  int     `bson:"totalBookings" json:"totalBookings"`
	// RatingVersion is bumped on every aggregate write so concurrent
	// recomputes cannot overwrite a fresher result.
	RatingVersion int `bson:"ratingVersion" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RatingSummary is the derived rating state of a provider.
type RatingSummary struct {
	ProviderID    string  `json:"providerId"`
	RatingAverage float64 `json:"ratingAverage"`
	TotalReviews  int     `json:"totalReviews"`
}

package models

// ProviderSummary is the listing projection returned by search.
type ProviderSummary struct {
	ID              string      `json:"id"`
	BusinessName    string      `json:"businessName"`
	Location        Location    `json:"location"`
	CategoryID      string      `json:"categoryId"`
	SubCategorySlug string      `json:"subCategorySlug,omitempty"`
	RatingAverage   float64     `json:"ratingAverage"`
	TotalReviews    int         `json:"totalReviews"`
	ProfileImage    *MediaAsset `json:"profileImage,omitempty"`
	DistanceKm      *float64    `json:"distanceKm,omitempty"`
}

// SearchResult is one page of ranked providers.
type SearchResult struct {
	Providers []ProviderSummary `json:"providers"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
	Count     int               `json:"count"`
}

// Page is a generic page of records.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

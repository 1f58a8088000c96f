package models

import "time"

// Service is a priced offering listed by a provider.
type Service struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	Title      string    `bson:"title" json:"title"`
	Price      float64   `bson:"price" json:"price"`
	IsActive   bool      `bson:"isActive" json:"isActive"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

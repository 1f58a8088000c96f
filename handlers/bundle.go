package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// JWTSecret verifies bearer tokens on protected routes.
	JWTSecret []byte

	// Search and provider endpoints
	SearchProvidersHandler     gin.HandlerFunc
	GetProviderHandler         gin.HandlerFunc
	UpdateAvatarHandler        gin.HandlerFunc
	ListProviderReviewsHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler        gin.HandlerFunc
	UpdateBookingStatusHandler  gin.HandlerFunc
	GetBookingHandler           gin.HandlerFunc
	ListMyBookingsHandler       gin.HandlerFunc
	ListProviderBookingsHandler gin.HandlerFunc

	// Review endpoints
	CreateReviewHandler  gin.HandlerFunc
	UpdateReviewHandler  gin.HandlerFunc
	DeleteReviewHandler  gin.HandlerFunc
	ApproveReviewHandler gin.HandlerFunc
	RejectReviewHandler  gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

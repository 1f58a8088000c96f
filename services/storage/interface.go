package storage

import (
	"context"
	"io"

	"localpro/models"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_storage.go -package=mocks

// MediaStore keeps image files outside the database.
type MediaStore interface {
	// Upload stores file under folder and returns its public reference.
	Upload(ctx context.Context, file io.Reader, folder string) (*models.MediaAsset, error)
	// Delete removes an asset by its public id.
	Delete(ctx context.Context, publicID string) error
}

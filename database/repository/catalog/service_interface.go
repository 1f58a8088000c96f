package catalogRepo

import (
	"context"
	"errors"

	"localpro/models"
)

//go:generate mockgen -source=service_interface.go -destination=mocks/mock_service_repository.go -package=mocks

var ErrNotFound = errors.New("service not found")

// ServiceRepository reads the provider service catalog.
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
}

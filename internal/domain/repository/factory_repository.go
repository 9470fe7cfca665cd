package repository

import "github.com/rkeng/billing-api/internal/domain/entity"

// FactoryRepository defines the persistence port for Factory.
// Every lookup is scoped by owner so a tenant can never see (or learn the
// existence of) another tenant's factories.
type FactoryRepository interface {
	Create(factory *entity.Factory) error
	ListByOwner(ownerID string) ([]*entity.Factory, error)
	// GetByIDAndOwner returns (nil, nil) when the factory does not exist or
	// belongs to a different owner.
	GetByIDAndOwner(id, ownerID string) (*entity.Factory, error)
	// Delete removes the factory if it is owned by ownerID; returns
	// domain.ErrNotFound otherwise.
	Delete(id, ownerID string) error
}

package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkeng/billing-api/internal/application/dto"
	"github.com/rkeng/billing-api/internal/domain"
	"github.com/rkeng/billing-api/internal/domain/entity"
	"github.com/rkeng/billing-api/internal/domain/repository"
)

// FactoryUseCase CRUD use cases for factories, always scoped to the owner.
type FactoryUseCase struct {
	repo repository.FactoryRepository
}

// NewFactoryUseCase builds the use case.
func NewFactoryUseCase(repo repository.FactoryRepository) *FactoryUseCase {
	return &FactoryUseCase{repo: repo}
}

// Create registers a new factory for the owner. Names are not unique.
func (uc *FactoryUseCase) Create(ownerID string, in dto.CreateFactoryRequest) (*dto.FactoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	factory := &entity.Factory{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(factory); err != nil {
		return nil, err
	}
	return toFactoryResponse(factory), nil
}

// ListForOwner returns only factories owned by ownerID.
func (uc *FactoryUseCase) ListForOwner(ownerID string) ([]dto.FactoryResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FactoryResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFactoryResponse(f))
	}
	return items, nil
}

// Delete removes the factory when owned by ownerID. The ownership check is
// folded into the lookup, so a foreign factory and a missing one are the same
// domain.ErrNotFound.
func (uc *FactoryUseCase) Delete(ownerID, factoryID string) error {
	return uc.repo.Delete(factoryID, ownerID)
}

func toFactoryResponse(f *entity.Factory) *dto.FactoryResponse {
	if f == nil {
		return nil
	}
	return &dto.FactoryResponse{
		ID:        f.ID,
		Name:      f.Name,
		Address:   f.Address,
		CreatedAt: f.CreatedAt,
	}
}

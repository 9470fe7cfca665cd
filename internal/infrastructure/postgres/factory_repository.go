package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rkeng/billing-api/internal/domain"
	"github.com/rkeng/billing-api/internal/domain/entity"
	"github.com/rkeng/billing-api/internal/domain/repository"
)

var _ repository.FactoryRepository = (*FactoryRepo)(nil)

// FactoryRepo implements the FactoryRepository port on PostgreSQL.
// Every lookup carries the owner_id predicate so cross-tenant rows are
// invisible at the SQL level, not filtered afterwards.
type FactoryRepo struct {
	q Querier
}

// NewFactoryRepository builds the adapter. Pass pool or tx (Querier).
func NewFactoryRepository(q Querier) *FactoryRepo {
	return &FactoryRepo{q: q}
}

// Create persists a new factory.
func (r *FactoryRepo) Create(factory *entity.Factory) error {
	query := `
		INSERT INTO factories (id, name, address, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		factory.ID, factory.Name, nullIfEmpty(factory.Address), factory.OwnerID, factory.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert factory: %w", err)
	}
	return nil
}

// ListByOwner lists factories owned by ownerID.
func (r *FactoryRepo) ListByOwner(ownerID string) ([]*entity.Factory, error) {
	query := `
		SELECT id, name, COALESCE(address, ''), owner_id, created_at
		FROM factories WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list factories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factory
	for rows.Next() {
		var f entity.Factory
		if err := rows.Scan(&f.ID, &f.Name, &f.Address, &f.OwnerID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan factory: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// GetByIDAndOwner returns (nil, nil) when the factory is absent or owned by
// someone else.
func (r *FactoryRepo) GetByIDAndOwner(id, ownerID string) (*entity.Factory, error) {
	query := `
		SELECT id, name, COALESCE(address, ''), owner_id, created_at
		FROM factories WHERE id = $1 AND owner_id = $2`
	var f entity.Factory
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&f.ID, &f.Name, &f.Address, &f.OwnerID, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factory by id and owner: %w", err)
	}
	return &f, nil
}

// Delete removes the factory when owned by ownerID; domain.ErrNotFound otherwise.
func (r *FactoryRepo) Delete(id, ownerID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM factories WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete factory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullIfEmpty maps "" to SQL NULL for optional text columns.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

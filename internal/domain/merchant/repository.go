package merchant

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/crediario/crediario-api/internal/pkg/memdb"
)

// Repository defines merchant storage operations
type Repository interface {
	Create(ctx context.Context, m *Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*Merchant, error)
	Search(ctx context.Context, query string) ([]Merchant, error)
	Update(ctx context.Context, m *Merchant) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) int
	All(ctx context.Context) []Merchant
}

type repository struct {
	merchants *memdb.Collection[Merchant]
}

// NewRepository creates an in-memory merchant repository
func NewRepository() Repository {
	return &repository{merchants: memdb.NewCollection[Merchant]()}
}

func (r *repository) Create(_ context.Context, m *Merchant) error {
	r.merchants.Append(*m)
	return nil
}

func (r *repository) GetByID(_ context.Context, id uuid.UUID) (*Merchant, error) {
	m, ok := r.merchants.Find(func(existing Merchant) bool { return existing.ID == id })
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

// Search matches name or email substrings, case-insensitive. An empty
// query returns every merchant.
func (r *repository) Search(_ context.Context, query string) ([]Merchant, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.merchants.All(), nil
	}
	return r.merchants.Filter(func(m Merchant) bool {
		return strings.Contains(strings.ToLower(m.Name), query) ||
			strings.Contains(strings.ToLower(m.Email), query)
	}), nil
}

func (r *repository) Update(_ context.Context, m *Merchant) error {
	err := r.merchants.Replace(func(existing Merchant) bool { return existing.ID == m.ID }, *m)
	if err != nil {
		return ErrNotFound
	}
	return nil
}

// Delete removes the merchant permanently. There is no soft-delete.
func (r *repository) Delete(_ context.Context, id uuid.UUID) error {
	err := r.merchants.Delete(func(existing Merchant) bool { return existing.ID == id })
	if err != nil {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Count(_ context.Context) int {
	return r.merchants.Len()
}

func (r *repository) All(_ context.Context) []Merchant {
	return r.merchants.All()
}

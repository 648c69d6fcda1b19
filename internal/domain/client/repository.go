package client

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/crediario/crediario-api/internal/pkg/memdb"
)

// Filter narrows merchant-scoped listings
type Filter struct {
	MerchantID uuid.UUID
	Query      string
	Status     PaymentStatus // empty = all statuses
}

// Repository defines client storage operations
type Repository interface {
	// Upsert replaces the client in place when its id exists, preserving
	// positional order; otherwise it appends.
	Upsert(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	// Search returns every match, in insertion order (merchant listing).
	Search(ctx context.Context, f Filter) ([]Client, error)
	// FindFirst returns only the first match (cashier lookup).
	FindFirst(ctx context.Context, merchantID uuid.UUID, query string) (*Client, error)
	Update(ctx context.Context, id uuid.UUID, apply func(*Client) error) (*Client, error)
	ByMerchant(ctx context.Context, merchantID uuid.UUID) []Client
	All(ctx context.Context) []Client
}

type repository struct {
	clients *memdb.Collection[Client]
}

// NewRepository creates an in-memory client repository
func NewRepository() Repository {
	return &repository{clients: memdb.NewCollection[Client]()}
}

func (r *repository) Upsert(_ context.Context, c *Client) error {
	err := r.clients.Replace(func(existing Client) bool { return existing.ID == c.ID }, *c)
	if err == nil {
		return nil
	}
	r.clients.Append(*c)
	return nil
}

func (r *repository) GetByID(_ context.Context, id uuid.UUID) (*Client, error) {
	c, ok := r.clients.Find(func(existing Client) bool { return existing.ID == id })
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// matchesQuery implements the merchant listing match: name, email or raw
// CPF substring, case-insensitive for the textual fields.
func matchesQuery(c Client, query string) bool {
	if query == "" {
		return true
	}
	lower := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), lower) ||
		strings.Contains(strings.ToLower(c.Email), lower) ||
		strings.Contains(c.CPF, query)
}

func (r *repository) Search(_ context.Context, f Filter) ([]Client, error) {
	query := strings.TrimSpace(f.Query)
	return r.clients.Filter(func(c Client) bool {
		if c.MerchantID != f.MerchantID {
			return false
		}
		if f.Status != "" && c.PaymentStatus != f.Status {
			return false
		}
		return matchesQuery(c, query)
	}), nil
}

// FindFirst implements the point-of-sale lookup: the digit-normalized CPF
// contains the digit-normalized query, or the name contains the query
// case-insensitively. Single-record semantics: only the first match is
// returned.
func (r *repository) FindFirst(_ context.Context, merchantID uuid.UUID, query string) (*Client, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrNotFound
	}

	digits := NormalizeCPF(query)
	lower := strings.ToLower(query)

	c, ok := r.clients.Find(func(existing Client) bool {
		if existing.MerchantID != merchantID {
			return false
		}
		if digits != "" && strings.Contains(NormalizeCPF(existing.CPF), digits) {
			return true
		}
		return strings.Contains(strings.ToLower(existing.Name), lower)
	})
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *repository) Update(_ context.Context, id uuid.UUID, apply func(*Client) error) (*Client, error) {
	updated, err := r.clients.Update(func(existing Client) bool { return existing.ID == id }, apply)
	if err == memdb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) ByMerchant(_ context.Context, merchantID uuid.UUID) []Client {
	return r.clients.Filter(func(c Client) bool { return c.MerchantID == merchantID })
}

func (r *repository) All(_ context.Context) []Client {
	return r.clients.All()
}

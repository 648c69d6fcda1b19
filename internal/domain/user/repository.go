package user

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/crediario/crediario-api/internal/pkg/memdb"
)

// Repository defines user storage operations
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type repository struct {
	users *memdb.Collection[User]
}

// NewRepository creates an in-memory user repository
func NewRepository() Repository {
	return &repository{users: memdb.NewCollection[User]()}
}

func (r *repository) Create(_ context.Context, u *User) error {
	email := strings.ToLower(u.Email)
	if _, ok := r.users.Find(func(existing User) bool {
		return strings.ToLower(existing.Email) == email
	}); ok {
		return ErrEmailConflict
	}
	r.users.Append(*u)
	return nil
}

func (r *repository) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := r.users.Find(func(existing User) bool { return existing.ID == id })
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *repository) GetByEmail(_ context.Context, email string) (*User, error) {
	email = strings.ToLower(email)
	u, ok := r.users.Find(func(existing User) bool {
		return strings.ToLower(existing.Email) == email
	})
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

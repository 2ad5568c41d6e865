package ports

import (
	"context"

	"github.com/plantops/identity-service/internal/core/domain"
)

// UserRepository defines the persistence contract for user credentials.
// Username uniqueness is enforced at the storage layer; concurrent writers
// against the same username are serialized there.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateRole(ctx context.Context, username, role string) (*domain.User, error)
}

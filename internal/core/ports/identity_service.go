package ports

import (
	"context"

	"github.com/plantops/identity-service/internal/core/domain"
)

// IdentityService is the request pipeline façade: registration, login, token
// introspection and privileged role reassignment. Caller and subject
// usernames arrive already proven by a verified token where applicable.
type IdentityService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Introspect(ctx context.Context, username string) (*domain.User, error)
	AssignRole(ctx context.Context, caller, target, newRole string) (*domain.User, error)
}

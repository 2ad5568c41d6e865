package service

import (
	"context"
	"errors"

	"github.com/plantops/identity-service/internal/api/metrics"
	"github.com/plantops/identity-service/internal/core/domain"
	"github.com/plantops/identity-service/internal/core/password"
	"github.com/plantops/identity-service/internal/core/ports"
	"github.com/plantops/identity-service/internal/core/token"
)

// unknownUserHash is a throwaway bcrypt hash verified against when a login
// names a user that does not exist, so the unknown-user and wrong-password
// paths spend the same work and return the same error.
const unknownUserHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// IdentityService composes the credential store, password hasher, token
// issuer and login limiter into the per-request pipeline.
type IdentityService struct {
	repo    ports.UserRepository
	hasher  *password.Hasher
	issuer  *token.Issuer
	limiter ports.LoginLimiter
}

// NewIdentityService wires the pipeline. A nil limiter disables login
// throttling (used by tests and single-node deployments without Redis).
func NewIdentityService(repo ports.UserRepository, hasher *password.Hasher, issuer *token.Issuer, limiter ports.LoginLimiter) *IdentityService {
	return &IdentityService{repo: repo, hasher: hasher, issuer: issuer, limiter: limiter}
}

// Register creates an account with the server-assigned default role. The
// caller never chooses a role; elevation is admin-only via AssignRole.
func (s *IdentityService) Register(ctx context.Context, username, pass string) (*domain.User, error) {
	if username == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	return created, nil
}

// Login authenticates a username/password pair and mints a bearer token
// embedding the user's current role. Unknown user and wrong password are
// indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, username, pass string) (string, *domain.User, error) {
	if username == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyFailures(ctx, username)
		if err == nil && blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn the same bcrypt work as the found-user path.
			s.hasher.Verify(pass, unknownUserHash)
			return "", nil, s.failLogin(ctx, username)
		}
		return "", nil, err
	}

	if !s.hasher.Verify(pass, user.PasswordHash) {
		return "", nil, s.failLogin(ctx, username)
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, username)
	}

	tok, err := s.issuer.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return tok, user, nil
}

func (s *IdentityService) failLogin(ctx context.Context, username string) error {
	if s.limiter != nil {
		_ = s.limiter.RecordFailure(ctx, username)
	}
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	return domain.ErrInvalidCredentials
}

// Introspect resolves the token subject from the store. The token only
// proves identity here; the returned role is the stored one, so role
// reassignments are visible before old tokens expire.
func (s *IdentityService) Introspect(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// AssignRole lets an admin overwrite a user's role. The caller's privilege
// is checked against the store, not the token snapshot, so a demoted admin
// loses this power immediately.
func (s *IdentityService) AssignRole(ctx context.Context, caller, target, newRole string) (*domain.User, error) {
	callerUser, err := s.repo.FindByUsername(ctx, caller)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if !domain.IsAdmin(callerUser.Role) {
		return nil, domain.ErrForbidden
	}

	if !domain.ValidRole(newRole) {
		return nil, domain.ErrInvalidRole
	}

	updated, err := s.repo.UpdateRole(ctx, target, newRole)
	if err != nil {
		return nil, err
	}

	metrics.RoleAssignmentsTotal.WithLabelValues(newRole).Inc()
	return updated, nil
}

// EnsureAdmin seeds the privileged account at startup if it is absent. It
// never touches an existing record, so redeploys cannot reset the admin
// password or role.
func (s *IdentityService) EnsureAdmin(ctx context.Context, username, pass string) error {
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	if errors.Is(err, domain.ErrDuplicateUsername) {
		// Lost a race against a concurrent bootstrap; the account exists.
		return nil
	}
	return err
}

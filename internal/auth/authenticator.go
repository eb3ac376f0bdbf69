package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oggyb/muzz-dating/internal/cache"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/repository"
)

// Identity is what an external identity provider vouches for when a session
// is established.
type Identity struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

// Authenticator resolves session tokens into users and manages the session
// lifecycle (establish, revoke).
type Authenticator struct {
	sessions *SessionManager
	users    *repository.UserRepository
	cache    *cache.RedisCache
}

func NewAuthenticator(sessions *SessionManager, users *repository.UserRepository, rc *cache.RedisCache) *Authenticator {
	return &Authenticator{sessions: sessions, users: users, cache: rc}
}

// Sessions exposes the token manager.
func (a *Authenticator) Sessions() *SessionManager { return a.sessions }

// Authenticate verifies token and loads the user it belongs to. Every
// successful authentication refreshes last_signed_in.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := a.sessions.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", svcErr.ErrUnauthenticated, err)
	}

	revoked, err := a.cache.IsSessionRevoked(ctx, claims.ID)
	if err != nil {
		// fail open: a cache outage must not log everyone out
		logger.FromContext(ctx).Warn("[Auth] revocation check failed", "err", err)
	} else if revoked {
		return nil, fmt.Errorf("%w: session revoked", svcErr.ErrUnauthenticated)
	}

	now := a.sessionTime()
	if err := a.users.Upsert(ctx, repository.UpsertUserInput{OpenID: claims.OpenID(), LastSignedIn: &now}); err != nil {
		logger.FromContext(ctx).Warn("[Auth] failed to refresh last sign-in", "open_id", claims.OpenID(), "err", err)
	}

	user, err := a.users.GetByOpenID(ctx, claims.OpenID())
	if err != nil {
		return nil, err
	}
	if user == nil {
		if !a.users.Available() {
			return nil, svcErr.ErrStoreUnavailable
		}
		return nil, fmt.Errorf("%w: user not found", svcErr.ErrUnauthenticated)
	}
	return &Session{User: user, Claims: claims}, nil
}

// Establish records the identity and issues a fresh session token for it.
func (a *Authenticator) Establish(ctx context.Context, id Identity) (string, error) {
	id.OpenID = strings.TrimSpace(id.OpenID)
	if id.OpenID == "" {
		return "", fmt.Errorf("%w: openId is required", svcErr.ErrValidation)
	}
	if !a.users.Available() {
		return "", svcErr.ErrStoreUnavailable
	}

	now := a.sessionTime()
	in := repository.UpsertUserInput{OpenID: id.OpenID, LastSignedIn: &now}
	if id.Name != "" {
		in.Name = &id.Name
	}
	if id.Email != "" {
		in.Email = &id.Email
	}
	if id.LoginMethod != "" {
		in.LoginMethod = &id.LoginMethod
	}
	if err := a.users.Upsert(ctx, in); err != nil {
		return "", err
	}

	token, _, err := a.sessions.Issue(id.OpenID, id.Name)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return token, nil
}

// Revoke logs a session out for the rest of its lifetime.
func (a *Authenticator) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil {
		return nil
	}
	if !a.cache.Enabled() {
		logger.FromContext(ctx).Warn("[Auth] cache disabled, session stays valid until expiry", "jti", claims.ID)
		return nil
	}
	return a.cache.RevokeSession(ctx, claims.ID, a.sessions.Remaining(claims))
}

// ResolveOptional authenticates token if present. Failures leave the request
// anonymous; protected procedures reject it later.
func (a *Authenticator) ResolveOptional(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	s, err := a.Authenticate(ctx, token)
	if err != nil {
		if !errors.Is(err, svcErr.ErrUnauthenticated) {
			logger.FromContext(ctx).Warn("[Auth] session resolution failed", "err", err)
		} else {
			logger.FromContext(ctx).Debug("[Auth] anonymous request", "reason", err)
		}
		return ctx
	}
	return WithSession(ctx, s)
}

func (a *Authenticator) sessionTime() time.Time {
	return a.users.Now()
}

package auth

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
)

// Session is an authenticated request's identity.
type Session struct {
	User   *db.User
	Claims *Claims
}

type sessionKey struct{}

// WithSession attaches a resolved session to ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session attached to ctx, if any.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil && s.User != nil
}

// UserFrom returns the current user or nil for anonymous requests.
func UserFrom(ctx context.Context) *db.User {
	if s, ok := SessionFrom(ctx); ok {
		return s.User
	}
	return nil
}

// RequireUser guards protected procedures.
func RequireUser(ctx context.Context) (*db.User, error) {
	if u := UserFrom(ctx); u != nil {
		return u, nil
	}
	return nil, svcErr.Unauthenticated("please login")
}

// TokenFromMetadata extracts a session token from gRPC metadata, preferring
// "authorization: Bearer <token>" over the session cookie.
func TokenFromMetadata(ctx context.Context, cookieName string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get("authorization") {
		if tok := BearerToken(v); tok != "" {
			return tok
		}
	}
	for _, v := range md.Get("cookie") {
		if tok := CookieValue(v, cookieName); tok != "" {
			return tok
		}
	}
	return ""
}

// BearerToken strips the "Bearer " scheme from an Authorization header value.
func BearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// CookieValue finds a named cookie in a Cookie header value.
func CookieValue(header, name string) string {
	cookies, err := http.ParseCookie(header)
	if err != nil {
		return ""
	}
	for _, c := range cookies {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// ExpiredCookie renders a Set-Cookie value that clears the session cookie.
func ExpiredCookie(name string) string {
	c := &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	return c.String()
}

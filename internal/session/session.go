// Package session holds the seller's authenticated session and the
// transport that attaches it to outgoing requests.  A session is
// created on successful login and destroyed on logout; nothing here
// touches disk, so closing the terminal ends the session.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/andesvia/boleteria/internal/model"
)

// Session identifies the logged-in seller.  There are no ambient auth
// globals: components that need to know who is logged in receive a
// Session as a value.
type Session struct {
	Token     string
	User      model.User
	ExpiresAt time.Time // zero when the token carries no exp claim
	CreatedAt time.Time
}

// New builds a session from a freshly issued token and the account
// returned by the "me" endpoint.  The expiry is read from the token's
// exp claim without verifying the signature: the backend is the
// authority on validity, the client only uses the claim to warn the
// seller before requests start failing.
func New(token string, user model.User) *Session {
	s := &Session{Token: token, User: user, CreatedAt: time.Now()}
	if claims := parseClaims(token); claims != nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			s.ExpiresAt = exp.Time
		}
	}
	return s
}

// parseClaims decodes the claims of a JWT without verification.
// Opaque (non-JWT) tokens yield nil and simply have no known expiry.
func parseClaims(token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// Expired reports whether the token's expiry has passed.  Sessions
// without a known expiry never report expired.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// Transport attaches the current session's bearer token to every
// request.  Source is consulted per request so that login and logout
// take effect without rebuilding the HTTP client; requests without a
// session go out unauthenticated.
type Transport struct {
	Base   http.RoundTripper
	Source func() *Session
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	sess := t.Source()
	if sess == nil || sess.Token == "" {
		return base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+sess.Token)
	return base.RoundTrip(clone)
}

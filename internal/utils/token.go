// Package utils provides the token and password helpers shared by the
// stub backend.
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT together with its expiry.  The
// terminal sends the Token string as a bearer credential; the expiry
// also travels inside the token's exp claim so the client can warn
// the seller before it lapses.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken signs an access token for a seller.  Claims follow
// the usual shape: sub carries the user ID, username the login name,
// exp and iat the validity window.
func NewAccessToken(secret string, userID uint64, username string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

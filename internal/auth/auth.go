package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identity describes the authenticated caller of an admin operation.
type Identity struct {
	Subject string
}

// Authenticator resolves the current caller's identity, or none.
// Any compliant identity provider can be substituted.
type Authenticator interface {
	Authenticate(r *http.Request) (*Identity, bool)
}

type contextKey string

const identityKey contextKey = "authIdentity"

// IdentityFromContext returns the caller identity if present.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}

// Require wraps admin routes, rejecting callers the authenticator
// cannot resolve with 401 before any handler runs.
func Require(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := a.Authenticate(r)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// JWTAuthenticator validates HMAC-signed bearer tokens.
type JWTAuthenticator struct {
	secret string
}

// NewJWTAuthenticator creates an authenticator for the given shared secret.
// An empty secret resolves no identity, which locks every admin route.
func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: secret}
}

// Authenticate extracts and verifies the Authorization bearer token.
func (a *JWTAuthenticator) Authenticate(r *http.Request) (*Identity, bool) {
	if a.secret == "" {
		return nil, false
	}
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(a.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return &Identity{Subject: claims.Subject}, true
}

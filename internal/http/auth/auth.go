package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fundexio/fundexio/internal/principal"
)

// CookieName is the cookie checked when no Authorization header is sent.
const CookieName = "accessToken"

var (
	ErrNoToken      = errors.New("unauthorized request: no token found")
	ErrInvalidToken = errors.New("invalid access token")
)

// Claims is the access token payload. Subject carries the user ID.
type Claims struct {
	Role principal.Role `json:"role"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p principal.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFrom returns the principal stored by Authenticate.
func PrincipalFrom(ctx context.Context) (principal.Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(principal.Principal)
	return p, ok
}

// ParseToken verifies an HS256 access token and returns the principal it names.
func ParseToken(secret, token string) (principal.Principal, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return principal.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return principal.Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	if !claims.Role.Valid() {
		return principal.Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return principal.New(id, claims.Role), nil
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}

	return ""
}

// Authenticate rejects requests without a valid access token and stores the
// token's principal in the request context.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				http.Error(w, ErrNoToken.Error(), http.StatusUnauthorized)
				return
			}

			p, err := ParseToken(secret, token)
			if err != nil {
				http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRole lets through only principals holding one of roles. It must run
// after Authenticate.
func RequireRole(roles ...principal.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				http.Error(w, "user authentication required", http.StatusUnauthorized)
				return
			}

			if !p.Is(roles...) {
				http.Error(w, fmt.Sprintf("role %s is not allowed to access this resource", p.Role), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

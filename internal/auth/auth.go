// Package auth gates the console API behind Firebase Auth ID tokens.
// It only establishes who the caller is; which screens an operator may
// use is a frontend concern.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// TokenVerifier is the slice of the Firebase Auth client we use.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Middleware verifies bearer tokens and attaches the caller's uid to
// the request context.
type Middleware struct {
	verifier TokenVerifier
}

// New builds a Middleware backed by the default Firebase app, which
// picks up credentials from the environment.
func New(ctx context.Context) (*Middleware, error) {
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase Auth client: %w", err)
	}
	return &Middleware{verifier: client}, nil
}

// NewWithVerifier wires a custom verifier, used by tests.
func NewWithVerifier(v TokenVerifier) *Middleware {
	return &Middleware{verifier: v}
}

type contextKey struct{}

// UserID returns the verified caller uid, or "" outside an
// authenticated request.
func UserID(ctx context.Context) string {
	uid, _ := ctx.Value(contextKey{}).(string)
	return uid
}

// RequireUser rejects requests without a valid Firebase ID token.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		verified, err := m.verifier.VerifyIDToken(r.Context(), strings.TrimSpace(token))
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), contextKey{}, verified.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

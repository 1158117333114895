package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
)

type mockVerifier struct {
	uid string
	err error
}

func (m *mockVerifier) VerifyIDToken(_ context.Context, _ string) (*fbauth.Token, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &fbauth.Token{UID: m.uid}, nil
}

func protectedEcho(t *testing.T, wantUID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantUID, UserID(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireUser(t *testing.T) {
	m := NewWithVerifier(&mockVerifier{uid: "operator-1"})
	srv := m.RequireUser(protectedEcho(t, "operator-1"))

	req := httptest.NewRequest(http.MethodGet, "/api/raffles", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireUserMissingHeader(t *testing.T) {
	m := NewWithVerifier(&mockVerifier{uid: "operator-1"})
	srv := m.RequireUser(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	for _, header := range []string{"", "Bearer ", "Basic abc", "valid-token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/raffles", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireUserInvalidToken(t *testing.T) {
	m := NewWithVerifier(&mockVerifier{err: errors.New("token expired")})
	srv := m.RequireUser(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/raffles", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserIDOutsideRequest(t *testing.T) {
	assert.Empty(t, UserID(context.Background()))
}

package auth

import (
	"errors"
	"testing"
	"time"

	"puentes_admin/internal/domain/entities"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := tm.Issue(Session{UserID: 7, Role: entities.RoleAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		session, err := tm.Parse(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.UserID != 7 || session.Role != entities.RoleAdmin {
			t.Fatalf("unexpected session: %+v", session)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenManager("test-secret", -time.Minute)
		token, err := expired.Issue(Session{UserID: 7, Role: entities.RoleUsuario})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := tm.Parse(token); !errors.Is(err, ErrExpiredToken) {
			t.Fatalf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour)
		token, err := other.Issue(Session{UserID: 7, Role: entities.RoleUsuario})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := tm.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := tm.Parse("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestExtractBearerToken(t *testing.T) {
	t.Run("valid header", func(t *testing.T) {
		token, err := ExtractBearerToken("Bearer abc.def.ghi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "abc.def.ghi" {
			t.Fatalf("unexpected token: %q", token)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		if _, err := ExtractBearerToken(""); !errors.Is(err, ErrMissingAuthHeader) {
			t.Fatalf("expected ErrMissingAuthHeader, got %v", err)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		if _, err := ExtractBearerToken("Basic abc"); !errors.Is(err, ErrInvalidAuthHeader) {
			t.Fatalf("expected ErrInvalidAuthHeader, got %v", err)
		}
	})

	t.Run("no token part", func(t *testing.T) {
		if _, err := ExtractBearerToken("Bearer"); !errors.Is(err, ErrInvalidAuthHeader) {
			t.Fatalf("expected ErrInvalidAuthHeader, got %v", err)
		}
	})
}

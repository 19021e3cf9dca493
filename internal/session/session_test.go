package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

var secret = []byte("test-secret")

func TestToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, "sess-1")
	if err != nil {
		t.Fatalf("GenerateToken() err = %v, want nil", err)
	}

	sid, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken() err = %v, want nil", err)
	}
	if sid != "sess-1" {
		t.Fatalf("ParseToken() sid = %q, want %q", sid, "sess-1")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken(secret, "sess-1")

	if _, err := ParseToken([]byte("other"), token); err == nil {
		t.Fatal("ParseToken() with wrong secret err = nil, want error")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken(secret, "not.a.token"); err == nil {
		t.Fatal("ParseToken() err = nil, want error")
	}
}

func TestRegistry_StoresAreSessionScoped(t *testing.T) {
	reg := NewRegistry(3)

	a := reg.Open()
	b := reg.Open()
	if a == b {
		t.Fatal("Open() returned duplicate session ids")
	}

	storeA := reg.Store(a)
	storeB := reg.Store(b)
	if storeA == storeB {
		t.Fatal("distinct sessions share a store")
	}
	if reg.Store(a) != storeA {
		t.Fatal("same session resolved to a different store")
	}

	_, _ = storeA.Create("t", "", "o", "Planned")
	if storeB.Count() != 0 {
		t.Fatal("mutation in one session leaked into another")
	}
}

func TestRegistry_NewStoreUsesDefaultThreshold(t *testing.T) {
	reg := NewRegistry(7)
	s := reg.Store(reg.Open())
	if s.Threshold() != 7 {
		t.Fatalf("Threshold() = %d, want 7", s.Threshold())
	}
}

func TestMiddleware(t *testing.T) {
	mw := New(secret)

	var gotSID string
	handler := mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		gotSID, _ = IDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/tasks", nil))
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rr := httptest.NewRecorder()
		handler(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, _ := GenerateToken(secret, "sess-42")
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		if gotSID != "sess-42" {
			t.Fatalf("session id in context = %q, want %q", gotSID, "sess-42")
		}
	})
}

func TestIDFromContext_Absent(t *testing.T) {
	if _, ok := IDFromContext(context.Background()); ok {
		t.Fatal("IDFromContext() ok = true on empty context")
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/redis/go-redis/v9"

	"halkapress/internal/handlers"
	"halkapress/internal/render"
	"halkapress/internal/session"
)

// testRouter builds the full router with a session store pointing at an
// unreachable Valkey. Requests without a session cookie never touch the
// backend, which is all these tests need.
func testRouter(t *testing.T) http.Handler {
	t.Helper()

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	sessions := session.NewStore(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), false)
	admin := handlers.NewAdmin(renderer, nil, nil)
	auth := handlers.NewAuth(renderer, sessions, nil)
	public := handlers.NewPublic(renderer, nil, nil)

	return New(sessions, admin, auth, public, false)
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestRootRedirectsToDefaultLanguage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	testRouter(t).ServeHTTP(w, r)

	if w.Code != http.StatusPermanentRedirect {
		t.Errorf("status: got %d, want 308", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/tr" {
		t.Errorf("location: got %q, want %q", loc, "/tr")
	}
}

func TestAdminAreaRequiresSession(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/admin/dashboard", "/admin/posts/new", "/admin/2fa/verify"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", path, nil)

			router.ServeHTTP(w, r)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status: got %d, want 303", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/admin" {
				t.Errorf("location: got %q, want %q", loc, "/admin")
			}
		})
	}
}

func TestAdminLoginPageNeedsNoSession(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/admin", nil)

	testRouter(t).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Yönetim Paneli") {
		t.Error("login page not served")
	}
}

func TestAdminMutationsRejectedWithoutCSRF(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/admin/logout", nil)
	r.AddCookie(&http.Cookie{Name: "hp_csrf", Value: "token"})

	testRouter(t).ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403", w.Code)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/static/style.css", nil)

	testRouter(t).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "selection") {
		t.Error("stylesheet content not served")
	}
}

package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dpang/faq-service/internal/config"
	"github.com/dpang/faq-service/internal/repository"
)

func setupAuthHandler(t *testing.T) (*AuthHandler, func()) {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE refresh_tokens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		token_hash TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   5,
		RefreshTTLDays: 7,
		BcryptCost:     4, // minimum cost keeps the tests fast
	}
	h := NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewTokenRepo(db))
	return h, func() { db.Close() }
}

func decodeAuthResp(t *testing.T, raw []byte) authResp {
	t.Helper()
	var env successEnv
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to parse envelope: %v", err)
	}
	var resp authResp
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("failed to parse auth payload: %v", err)
	}
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	h, teardown := setupAuthHandler(t)
	defer teardown()

	c, rec := newContext(t, http.MethodPost, "/v1/auth/register",
		`{"email":"Admin@Example.com","password":"hunter22","role":"ADMIN"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	reg := decodeAuthResp(t, rec.Body.Bytes())
	if reg.User.Email != "admin@example.com" {
		t.Errorf("email should be normalized: %q", reg.User.Email)
	}
	if reg.User.Role != "ADMIN" {
		t.Errorf("expected ADMIN role, got %q", reg.User.Role)
	}
	if reg.Access.Token == "" || reg.Refresh.Token == "" {
		t.Error("expected both tokens in the response")
	}

	lc, lrec := newContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"admin@example.com","password":"hunter22"}`)
	if err := h.Login(lc); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if lrec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", lrec.Code, lrec.Body.String())
	}

	// Wrong password must not leak whether the account exists.
	bc, brec := newContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`)
	if err := h.Login(bc); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if brec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", brec.Code)
	}
}

func TestRegisterSuperAdminDemoted(t *testing.T) {
	h, teardown := setupAuthHandler(t)
	defer teardown()

	// SUPER_ADMIN cannot be self-registered; unknown roles fall back too.
	c, rec := newContext(t, http.MethodPost, "/v1/auth/register",
		`{"email":"root@example.com","password":"pw","role":"SUPER_ADMIN"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	reg := decodeAuthResp(t, rec.Body.Bytes())
	if reg.User.Role != "USER" {
		t.Errorf("expected fallback to USER, got %q", reg.User.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, teardown := setupAuthHandler(t)
	defer teardown()

	c, rec := newContext(t, http.MethodPost, "/v1/auth/register",
		`{"email":"a@b.c","password":"pw"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	dc, drec := newContext(t, http.MethodPost, "/v1/auth/register",
		`{"email":"a@b.c","password":"pw2"}`)
	if err := h.Register(dc); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if drec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", drec.Code)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	h, teardown := setupAuthHandler(t)
	defer teardown()

	c, rec := newContext(t, http.MethodPost, "/v1/auth/register",
		`{"email":"u@e.x","password":"pw"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	reg := decodeAuthResp(t, rec.Body.Bytes())

	rc, rrec := newContext(t, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+reg.Refresh.Token+`"}`)
	if err := h.Refresh(rc); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if rrec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rrec.Code, rrec.Body.String())
	}
	refreshed := decodeAuthResp(t, rrec.Body.Bytes())
	if refreshed.Refresh.Token == reg.Refresh.Token {
		t.Error("refresh must rotate the refresh token")
	}

	// The old token is revoked and cannot be reused.
	oc, orec := newContext(t, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+reg.Refresh.Token+`"}`)
	if err := h.Refresh(oc); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if orec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for replayed refresh token, got %d", orec.Code)
	}
}

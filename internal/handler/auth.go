package handler

import (
    "context"
    "database/sql"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/dpang/faq-service/internal/config"
    "github.com/dpang/faq-service/internal/model"
    "github.com/dpang/faq-service/internal/repository"
    "github.com/dpang/faq-service/internal/response"
    "github.com/dpang/faq-service/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
    Cfg    config.Config
    Users  *repository.UserRepo
    Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type registerReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
    Role     string `json:"role"` // USER | ADMIN (SUPER_ADMIN is seeded, not registered)
}
type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}
type refreshReq struct {
    RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}
type userPart struct {
    ID    int64  `json:"id"`
    Email string `json:"email"`
    Role  string `json:"role"`
}
type authResp struct {
    User    userPart  `json:"user"`
    Access  tokenPart `json:"access"`
    Refresh tokenPart `json:"refresh"`
}

// issuePair mints an access/refresh token pair for the user and stores the
// refresh token hash.
func (h *AuthHandler) issuePair(ctx context.Context, id int64, email, role string) (*authResp, error) {
    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, id, role, h.Cfg.AccessTTLMin)
    if err != nil {
        return nil, err
    }
    refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
    if err != nil {
        return nil, err
    }
    if err := h.Tokens.StoreRefresh(ctx, id, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
        return nil, err
    }
    return &authResp{
        User:    userPart{ID: id, Email: email, Role: role},
        Access:  tokenPart{Token: access.Token, Expires: access.Exp},
        Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw goes back to the client
    }, nil
}

// Register creates a user and returns a token pair immediately.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return response.Fail(c, http.StatusBadRequest, "invalid body")
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return response.Fail(c, http.StatusBadRequest, "email/password required")
    }
    role := strings.ToUpper(strings.TrimSpace(req.Role))
    if role != model.RoleAdmin && role != model.RoleUser {
        role = model.RoleUser
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := h.Users.Create(ctx, req.Email, req.Password, role, h.Cfg.BcryptCost)
    if err != nil {
        if errors.Is(err, repository.ErrEmailExists) {
            return response.Fail(c, http.StatusConflict, "email already exists")
        }
        return response.Fail(c, http.StatusInternalServerError, "create user failed")
    }

    pair, err := h.issuePair(ctx, uid, req.Email, role)
    if err != nil {
        return response.Fail(c, http.StatusInternalServerError, "issue tokens failed")
    }
    return response.OK(c, http.StatusCreated, "registered", pair)
}

// Login verifies credentials and returns a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return response.Fail(c, http.StatusBadRequest, "invalid body")
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return response.Fail(c, http.StatusBadRequest, "email/password required")
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return response.Fail(c, http.StatusUnauthorized, "invalid credentials")
        }
        return response.Fail(c, http.StatusInternalServerError, "query failed")
    }
    if !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return response.Fail(c, http.StatusUnauthorized, "invalid credentials")
    }

    pair, err := h.issuePair(ctx, u.ID, u.Email, u.Role)
    if err != nil {
        return response.Fail(c, http.StatusInternalServerError, "issue tokens failed")
    }
    return response.OK(c, http.StatusOK, "logged in", pair)
}

// Refresh validates a refresh token by hash, revokes it and issues a new
// pair (rotation).
func (h *AuthHandler) Refresh(c echo.Context) error {
    var req refreshReq
    if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
        return response.Fail(c, http.StatusBadRequest, "refresh_token required")
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    hash := utils.HashRefreshRaw(req.RefreshToken)
    uid, err := h.Tokens.ValidateRefresh(ctx, hash)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return response.Fail(c, http.StatusUnauthorized, "invalid refresh token")
        }
        return response.Fail(c, http.StatusInternalServerError, "query failed")
    }

    u, err := h.Users.GetByID(ctx, uid)
    if err != nil {
        return response.Fail(c, http.StatusInternalServerError, "query failed")
    }

    // Rotate: the presented token is dead regardless of what happens next.
    if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
        return response.Fail(c, http.StatusInternalServerError, "revoke failed")
    }

    pair, err := h.issuePair(ctx, u.ID, u.Email, u.Role)
    if err != nil {
        return response.Fail(c, http.StatusInternalServerError, "issue tokens failed")
    }
    return response.OK(c, http.StatusOK, "refreshed", pair)
}

// Logout revokes the presented refresh token. No JWT is required; holding
// the refresh token is proof enough of the session.
func (h *AuthHandler) Logout(c echo.Context) error {
    var req refreshReq
    if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
        return response.Fail(c, http.StatusBadRequest, "refresh_token required")
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Tokens.RevokeByHash(ctx, utils.HashRefreshRaw(req.RefreshToken)); err != nil {
        return response.Fail(c, http.StatusInternalServerError, "revoke failed")
    }
    return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated caller's user record.
func (h *AuthHandler) Me(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return response.Fail(c, http.StatusUnauthorized, "unauthorized")
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByID(ctx, uid)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return response.Fail(c, http.StatusNotFound, "user not found")
        }
        return response.Fail(c, http.StatusInternalServerError, "query failed")
    }
    return response.OK(c, http.StatusOK, "me", userPart{ID: u.ID, Email: u.Email, Role: u.Role})
}

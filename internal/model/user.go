package model

import "time"

// Role names as stored in users.role and carried in the JWT "role" claim.
// USER may read FAQ entries; ADMIN and SUPER_ADMIN may also write them.
// SUPER_ADMIN accounts are seeded out of band, never self-registered.
const (
    RoleUser       = "USER"
    RoleAdmin      = "ADMIN"
    RoleSuperAdmin = "SUPER_ADMIN"
)

// User represents a row in the `users` table. The password is stored only
// as a bcrypt hash. Handlers define their own response types, so no json
// tags are attached here.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – one of RoleUser, RoleAdmin, RoleSuperAdmin.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           int64     // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    IsActive     bool      // users.is_active
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table. Only the
// SHA-256 hash of the token value is persisted.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp.
//  RevokedAt – when the token was revoked (nil while active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
    ID        int64      // refresh_tokens.id
    UserID    int64      // refresh_tokens.user_id
    TokenHash string     // refresh_tokens.token_hash
    ExpiresAt time.Time  // refresh_tokens.expires_at
    RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
    CreatedAt time.Time  // refresh_tokens.created_at
}

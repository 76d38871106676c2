package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// ParseRole maps a backend role string to a Role, defaulting to guest for
// anything unrecognized. The backend profile is the source of truth for
// roles in backend auth mode; this is boundary defaulting, not validation.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleUser:
		return RoleUser
	default:
		return RoleGuest
	}
}

// Profile is the user profile attached to a session. In backend auth mode
// it comes from the auction backend's login response; in oauth mode it is
// mapped from IdP claims.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	DOB   string `json:"dob,omitempty"`
	Role  Role   `json:"role"`
}

// IsAdmin returns true if the profile carries the admin role.
func (p Profile) IsAdmin() bool { return p.Role == RoleAdmin }

// Identity represents the authenticated principal returned by an IdP in
// oauth mode. Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (e.g., samAccountName or sub)
	FirstName string
	LastName  string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier.
//
// Invariant: ExpiresAt is at least CreatedAt + 24h at creation time. The
// session manager enforces this; a Session is either wholly absent or has
// both Profile and ExpiresAt set.
type Session struct {
	ID      string  `json:"id"`
	Profile Profile `json:"profile"`

	// BackendToken is the credential the auction backend issued at login.
	// It is forwarded on every backend call made on this user's behalf and
	// never leaves the server side.
	BackendToken string `json:"backend_token,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's absolute expiry has passed.
func (s Session) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Profile.Role == RoleGuest }

// Copyright (c) 2026 Code2Lead. All rights reserved.

/*
Package auth implements the user identity layer of Code2Lead.

It owns the Identity Record (User), the credential checks performed at login,
and the admin-driven account lifecycle (creation, activation, deactivation).

# Architecture

  - Entities: User and its Safe/Public projections.
  - Service: Orchestrates business logic (RegisterAdmin, Login, CreateUser, ...).
  - Repository: Postgres for accounts, Redis for failed-login counters.
  - Security: bcrypt hashing and HS256 session tokens from package sec.
*/
package auth

import (
	"time"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/slice"
)

// # Domain Entities

// User is the Identity Record of a registered member of the platform.
type User struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Username      string       `json:"username"`
	Email         string       `json:"email"`
	PasswordHash  string       `json:"-"` // Explicitly omitted from JSON for security.
	Role          sec.UserRole `json:"role"`
	IsActive      bool         `json:"isActive"`
	Bio           string       `json:"bio"`
	Avatar        string       `json:"avatar"`
	PublicProfile bool         `json:"publicProfile"`
	Social        Social       `json:"social"`
	Studies       []Study      `json:"studies"`
	LastLogin     *time.Time   `json:"lastLogin"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Social holds the user's public social profile links.
type Social struct {
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Study is one entry of the user's education history.
type Study struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Identity returns the claims embedded in the user's session token.
func (user *User) Identity() sec.Identity {
	return sec.Identity{
		ID:       user.ID,
		Role:     user.Role,
		Email:    user.Email,
		Username: user.Username,
	}
}

// # Projections

// SafeUser is the projection returned to the account owner and to admins.
// It never carries the password hash.
type SafeUser struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Username      string       `json:"username"`
	Email         string       `json:"email"`
	Role          sec.UserRole `json:"role"`
	Avatar        string       `json:"avatar"`
	Bio           string       `json:"bio"`
	Social        Social       `json:"social"`
	Studies       []Study      `json:"studies"`
	PublicProfile bool         `json:"publicProfile"`
	IsActive      bool         `json:"isActive"`
	LastLogin     *time.Time   `json:"lastLogin"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Safe returns the [SafeUser] projection of user.
func (user *User) Safe() SafeUser {
	return SafeUser{
		ID:            user.ID,
		Name:          user.Name,
		Username:      user.Username,
		Email:         user.Email,
		Role:          user.Role,
		Avatar:        user.Avatar,
		Bio:           user.Bio,
		Social:        user.Social,
		Studies:       nonNilStudies(user.Studies),
		PublicProfile: user.PublicProfile,
		IsActive:      user.IsActive,
		LastLogin:     user.LastLogin,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// PublicProfile is what anonymous visitors see of a public account.
// Email, activation state and login history are withheld.
type PublicProfile struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Username  string       `json:"username"`
	Role      sec.UserRole `json:"role"`
	Avatar    string       `json:"avatar"`
	Bio       string       `json:"bio"`
	Social    Social       `json:"social"`
	Studies   []Study      `json:"studies"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Public returns the [PublicProfile] projection of user.
func (user *User) Public() PublicProfile {
	return PublicProfile{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Role:      user.Role,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		Social:    user.Social,
		Studies:   nonNilStudies(user.Studies),
		CreatedAt: user.CreatedAt,
	}
}

// SafeUsers projects a list of users.
func SafeUsers(users []*User) []SafeUser {
	return slice.Map(users, (*User).Safe)
}

func nonNilStudies(studies []Study) []Study {
	if studies == nil {
		return []Study{}
	}
	return studies
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName          = "name"
	FieldUsername      = "username"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldRole          = "role"
	FieldBio           = "bio"
	FieldAvatar        = "avatar"
	FieldPublicProfile = "publicProfile"
	FieldSocial        = "social"
	FieldStudies       = "studies"
	FieldToken         = "token"
	FieldUser          = "user"
)

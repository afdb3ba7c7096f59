// Copyright (c) 2026 Code2Lead. All rights reserved.

// Package schema names the tables, columns and constraints of the Code2Lead
// database so that repositories never spell identifiers by hand.
package schema

import "strings"

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table         string
	ID            string
	Name          string
	Username      string
	Email         string
	Password      string
	Role          string
	IsActive      string
	Bio           string
	Avatar        string
	PublicProfile string
	Social        string
	Studies       string
	LastLoginAt   string
	CreatedAt     string
	UpdatedAt     string

	// Unique constraints, translated into EMAIL_EXISTS / USERNAME_EXISTS
	EmailKey    string
	UsernameKey string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:         "users.account",
	ID:            "id",
	Name:          "name",
	Username:      "username",
	Email:         "email",
	Password:      "passwordhash",
	Role:          "role",
	IsActive:      "isactive",
	Bio:           "bio",
	Avatar:        "avatar",
	PublicProfile: "publicprofile",
	Social:        "social",
	Studies:       "studies",
	LastLoginAt:   "lastloginat",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",

	EmailKey:    "account_email_key",
	UsernameKey: "account_username_key",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Username, t.Email, t.Password, t.Role, t.IsActive,
		t.Bio, t.Avatar, t.PublicProfile, t.Social, t.Studies,
		t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
	}
}

// SelectList returns the standard columns joined for a SELECT or RETURNING clause.
func (t UserAccountTable) SelectList() string {
	return strings.Join(t.Columns(), ", ")
}

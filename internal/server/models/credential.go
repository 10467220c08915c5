// Package models contains the persisted entities of the server component.
package models

import "time"

// Credential is the persisted account record. PasswordHash always holds the
// bcrypt digest, never the raw password. CreatedBy is backfilled with the
// account's own UserID right after creation, so it stays zero only when the
// registration flow failed between insert and patch.
type Credential struct {
	UserID       int64
	Email        string
	Username     string
	PasswordHash string
	Role         string
	CreatedBy    int64
	CreatedAt    time.Time
}

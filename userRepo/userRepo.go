package userRepo

import (
	"context"

	"github.com/pattaranan1/Twitter-Cloning/models"
)

// UserRepo is the identity store. Passwords arrive here already hashed ,
// the repo never sees a raw credential.
type UserRepo interface {
	// CreateUser returns models.ErrDuplicateUsername when the name is taken.
	CreateUser(ctx context.Context, username string, hashedPassword string) (int64, error)
	// GetCredential returns the stored user record (Password holds the
	// hash) for a login check.
	GetCredential(ctx context.Context, username string) (models.User, error)
	GetID(ctx context.Context, username string) (int64, error)
	GetUserName(ctx context.Context, id int64) (string, error)
	// RecentUsers lists up to limit usernames , newest registration first.
	RecentUsers(ctx context.Context, limit int64) ([]string, error)
}

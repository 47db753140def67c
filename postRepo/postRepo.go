package postRepo

import (
	"context"
	"strings"

	"github.com/pattaranan1/Twitter-Cloning/models"
)

// PostRepo is the source of truth for posts. Timeline lists only hold
// references into it.
type PostRepo interface {
	// CreatePost persists the post and returns its fresh id.
	CreatePost(ctx context.Context, authorID int64, text string, createdAt int64) (int64, error)
	// Get returns models.ErrPostNotFound for absent ids. Timeline readers
	// must treat that as an evicted reference and skip it.
	Get(ctx context.Context, postID int64) (models.Post, error)
}

var newlineStripper = strings.NewReplacer("\n", "", "\r", "")

// SanitizeText drops newline characters before persisting. The scalar
// encoding of the redis backend is delimiter based and a raw newline
// would corrupt it.
func SanitizeText(text string) string {
	return newlineStripper.Replace(text)
}

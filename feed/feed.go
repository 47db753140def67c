package feed

import (
	"context"

	"github.com/pattaranan1/Twitter-Cloning/models"
)

// Feed answers timeline reads and absorbs new posts. Two realizations of
// the same contract exist: the redis push model precomputes every home
// timeline at write time , the postgres pull model joins at read time and
// has nothing to do on FanoutPost.
type Feed interface {
	FanoutPost(ctx context.Context, item models.FeedItem) error
	HomeTimeline(ctx context.Context, userID int64, limit int64) ([]models.PostView, error)
	GlobalTimeline(ctx context.Context, limit int64) ([]models.PostView, error)
}

package feed

import (
	"context"
	"database/sql"
	"time"

	"github.com/pattaranan1/Twitter-Cloning/models"
)

// PullFeed is the fan-in-on-read realization on postgres. Nothing is
// precomputed , home timelines are joined over the followers table at
// read time.
type PullFeed struct {
	db  *sql.DB
	now func() time.Time
}

func NewPullFeed(db *sql.DB) *PullFeed {
	return &PullFeed{db: db, now: time.Now}
}

// FanoutPost is a no-op here , the join below picks new posts up on the
// next read.
func (pf *PullFeed) FanoutPost(ctx context.Context, item models.FeedItem) error {
	return nil
}

func (pf *PullFeed) HomeTimeline(ctx context.Context, userID int64, limit int64) ([]models.PostView, error) {
	rows, err := pf.db.QueryContext(ctx,
		`SELECT p.content, p.created_at, u.username
		FROM posts p JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
		   OR p.user_id IN (SELECT followed_id FROM followers WHERE follower_id = $1)
		ORDER BY p.id DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	return pf.scanViews(rows)
}

func (pf *PullFeed) GlobalTimeline(ctx context.Context, limit int64) ([]models.PostView, error) {
	rows, err := pf.db.QueryContext(ctx,
		`SELECT p.content, p.created_at, u.username
		FROM posts p JOIN users u ON u.id = p.user_id
		ORDER BY p.id DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	return pf.scanViews(rows)
}

func (pf *PullFeed) scanViews(rows *sql.Rows) ([]models.PostView, error) {
	defer rows.Close()
	now := pf.now()
	views := make([]models.PostView, 0)
	for rows.Next() {
		var content, username string
		var createdAt int64
		if err := rows.Scan(&content, &createdAt, &username); err != nil {
			return nil, err
		}
		views = append(views, models.PostView{
			Content:  content,
			UserName: username,
			Elapsed:  ElapsedLabel(time.Unix(createdAt, 0), now),
		})
	}
	return views, rows.Err()
}

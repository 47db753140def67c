package followRepo

import (
	"context"
	"database/sql"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (repo *PostgresRepo) Follow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return nil
	}
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO followers (follower_id, followed_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		followerID, followedID)
	return err
}

func (repo *PostgresRepo) Unfollow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return nil
	}
	_, err := repo.db.ExecContext(ctx,
		`DELETE FROM followers WHERE follower_id = $1 AND followed_id = $2`,
		followerID, followedID)
	return err
}

func (repo *PostgresRepo) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	var exists bool
	err := repo.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM followers WHERE follower_id = $1 AND followed_id = $2)`,
		followerID, followedID).Scan(&exists)
	return exists, err
}

func (repo *PostgresRepo) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM followers WHERE follower_id = $1`, userID).Scan(&count)
	return count, err
}

func (repo *PostgresRepo) FollowerCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM followers WHERE followed_id = $1`, userID).Scan(&count)
	return count, err
}

func (repo *PostgresRepo) Followers(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := repo.db.QueryContext(ctx,
		`SELECT follower_id FROM followers WHERE followed_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

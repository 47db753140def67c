package postRepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pattaranan1/Twitter-Cloning/models"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (repo *PostgresRepo) CreatePost(ctx context.Context, authorID int64, text string, createdAt int64) (int64, error) {
	var id int64
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO posts (user_id, content, created_at) VALUES ($1, $2, $3) RETURNING id`,
		authorID, SanitizeText(text), createdAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (repo *PostgresRepo) Get(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post
	err := repo.db.QueryRowContext(ctx,
		`SELECT id, user_id, content, created_at FROM posts WHERE id = $1`, postID).Scan(
		&post.Id,
		&post.User_id,
		&post.Content,
		&post.Created_at,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, models.ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

package userRepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/pattaranan1/Twitter-Cloning/models"
)

const uniqueViolation = "23505"

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (repo *PostgresRepo) CreateUser(ctx context.Context, username string, hashedPassword string) (int64, error) {
	var id int64
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`,
		username, hashedPassword).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, models.ErrDuplicateUsername
		}
		return 0, err
	}
	return id, nil
}

func (repo *PostgresRepo) GetCredential(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := repo.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`, username).Scan(
		&user.UserID,
		&user.UserName,
		&user.Password,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUnknownUser
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *PostgresRepo) GetID(ctx context.Context, username string) (int64, error) {
	var id int64
	err := repo.db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrUnknownUser
	}
	return id, err
}

func (repo *PostgresRepo) GetUserName(ctx context.Context, id int64) (string, error) {
	var name string
	err := repo.db.QueryRowContext(ctx,
		`SELECT username FROM users WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrUnknownUser
	}
	return name, err
}

func (repo *PostgresRepo) RecentUsers(ctx context.Context, limit int64) ([]string, error) {
	rows, err := repo.db.QueryContext(ctx,
		`SELECT username FROM users ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		users = append(users, name)
	}
	return users, rows.Err()
}

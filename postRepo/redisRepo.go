package postRepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pattaranan1/Twitter-Cloning/models"
	"github.com/pattaranan1/Twitter-Cloning/store"
)

const nextPostIdKey = "global:nextPostId"

func postKey(id int64) string {
	return fmt.Sprintf("post:%d", id)
}

type redisRepo struct {
	s store.Store
}

func NewRedisRepo(s store.Store) PostRepo {
	return &redisRepo{s: s}
}

// Posts are stored as one scalar per id: "<author>|<unixtime>|<text>".
// Text is sanitized first , the pipes before it are the only delimiters.
func (repo *redisRepo) CreatePost(ctx context.Context, authorID int64, text string, createdAt int64) (int64, error) {
	id, err := repo.s.Incr(ctx, nextPostIdKey)
	if err != nil {
		return 0, err
	}
	val := fmt.Sprintf("%d|%d|%s", authorID, createdAt, SanitizeText(text))
	if err := repo.s.Set(ctx, postKey(id), val); err != nil {
		return 0, err
	}
	return id, nil
}

func (repo *redisRepo) Get(ctx context.Context, postID int64) (models.Post, error) {
	val, err := repo.s.Get(ctx, postKey(postID))
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.Post{}, models.ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	parts := strings.SplitN(val, "|", 3)
	if len(parts) != 3 {
		return models.Post{}, models.ErrPostNotFound
	}
	authorID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return models.Post{}, err
	}
	createdAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return models.Post{}, err
	}
	return models.Post{
		Id:         postID,
		User_id:    authorID,
		Content:    parts[2],
		Created_at: createdAt,
	}, nil
}

package userRepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/pattaranan1/Twitter-Cloning/models"
	"github.com/pattaranan1/Twitter-Cloning/store"
)

const (
	nextUserIdKey  = "global:nextUserId"
	globalUsersKey = "global:users"
	usernameGetPat = "uid:*:username"
)

func usernameIdKey(username string) string {
	return fmt.Sprintf("username:%s:id", username)
}

func uidUsernameKey(id int64) string {
	return fmt.Sprintf("uid:%d:username", id)
}

func uidPasswordKey(id int64) string {
	return fmt.Sprintf("uid:%d:password", id)
}

type redisRepo struct {
	s store.Store
}

func NewRedisRepo(s store.Store) UserRepo {
	return &redisRepo{s: s}
}

// CreateUser claims the username key with SETNX so two concurrent signups
// of the same name cannot both win. A lost claim wastes the id it drew ,
// ids stay unique and increasing either way.
func (repo *redisRepo) CreateUser(ctx context.Context, username string, hashedPassword string) (int64, error) {
	id, err := repo.s.Incr(ctx, nextUserIdKey)
	if err != nil {
		return 0, err
	}
	won, err := repo.s.SetNX(ctx, usernameIdKey(username), strconv.FormatInt(id, 10))
	if err != nil {
		return 0, err
	}
	if !won {
		return 0, models.ErrDuplicateUsername
	}
	if err := repo.s.Set(ctx, uidUsernameKey(id), username); err != nil {
		return 0, err
	}
	if err := repo.s.Set(ctx, uidPasswordKey(id), hashedPassword); err != nil {
		return 0, err
	}
	if err := repo.s.SAdd(ctx, globalUsersKey, strconv.FormatInt(id, 10)); err != nil {
		return 0, err
	}
	return id, nil
}

func (repo *redisRepo) GetCredential(ctx context.Context, username string) (models.User, error) {
	id, err := repo.GetID(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	hash, err := repo.s.Get(ctx, uidPasswordKey(id))
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.User{}, models.ErrUnknownUser
	}
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		UserID:   id,
		UserName: username,
		Password: hash,
	}, nil
}

func (repo *redisRepo) GetID(ctx context.Context, username string) (int64, error) {
	val, err := repo.s.Get(ctx, usernameIdKey(username))
	if errors.Is(err, store.ErrKeyNotFound) {
		return 0, models.ErrUnknownUser
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (repo *redisRepo) GetUserName(ctx context.Context, id int64) (string, error) {
	name, err := repo.s.Get(ctx, uidUsernameKey(id))
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", models.ErrUnknownUser
	}
	return name, err
}

func (repo *redisRepo) RecentUsers(ctx context.Context, limit int64) ([]string, error) {
	names, err := repo.s.SortGet(ctx, globalUsersKey, usernameGetPat, limit)
	if err != nil {
		return nil, err
	}
	users := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		users = append(users, name)
	}
	return users, nil
}

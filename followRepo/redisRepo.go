package followRepo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pattaranan1/Twitter-Cloning/store"
)

func followersKey(id int64) string {
	return fmt.Sprintf("uid:%d:followers", id)
}

func followingKey(id int64) string {
	return fmt.Sprintf("uid:%d:following", id)
}

type redisRepo struct {
	s store.Store
}

func NewRedisRepo(s store.Store) FollowRepo {
	return &redisRepo{s: s}
}

func (repo *redisRepo) Follow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return nil
	}
	if err := repo.s.SAdd(ctx, followingKey(followerID), strconv.FormatInt(followedID, 10)); err != nil {
		return err
	}
	return repo.s.SAdd(ctx, followersKey(followedID), strconv.FormatInt(followerID, 10))
}

func (repo *redisRepo) Unfollow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return nil
	}
	if err := repo.s.SRem(ctx, followingKey(followerID), strconv.FormatInt(followedID, 10)); err != nil {
		return err
	}
	return repo.s.SRem(ctx, followersKey(followedID), strconv.FormatInt(followerID, 10))
}

func (repo *redisRepo) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	return repo.s.SIsMember(ctx, followingKey(followerID), strconv.FormatInt(followedID, 10))
}

func (repo *redisRepo) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	return repo.s.SCard(ctx, followingKey(userID))
}

func (repo *redisRepo) FollowerCount(ctx context.Context, userID int64) (int64, error) {
	return repo.s.SCard(ctx, followersKey(userID))
}

func (repo *redisRepo) Followers(ctx context.Context, userID int64) ([]int64, error) {
	members, err := repo.s.SMembers(ctx, followersKey(userID))
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package followRepo

import "context"

// FollowRepo owns both adjacency sets. No caller can touch one side of the
// edge without the other , every mutation goes through Follow/Unfollow.
type FollowRepo interface {
	// Follow is idempotent. A self follow is a checked no-op , not an error.
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	FollowingCount(ctx context.Context, userID int64) (int64, error)
	FollowerCount(ctx context.Context, userID int64) (int64, error)
	// Followers feeds the fanout engine.
	Followers(ctx context.Context, userID int64) ([]int64, error)
}

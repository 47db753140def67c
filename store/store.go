package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for absent scalar keys.
var ErrKeyNotFound = errors.New("key not found")

// Store is the flat storage surface the repos run on.
// Every call is a blocking round trip to the backend , callers must not
// assume atomicity across two calls. Incr is the only id source.
type Store interface {
	Incr(ctx context.Context, key string) (int64, error)

	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	// SetNX claims key only if absent. Returns true when this caller won.
	SetNX(ctx context.Context, key string, value string) (bool, error)

	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SIsMember(ctx context.Context, key string, member string) (bool, error)
	SMembers(ctx context.Context, key string) ([]string, error)
	SCard(ctx context.Context, key string) (int64, error)

	LPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LTrim(ctx context.Context, key string, start, stop int64) error

	// SortGet lists up to count members of the set at key in descending
	// numeric order, resolving each through getPattern ("*" is replaced
	// by the member). Mirrors redis SORT ... GET.
	SortGet(ctx context.Context, key string, getPattern string, count int64) ([]string, error)

	Close() error
}

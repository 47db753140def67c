// Package timeline models the per-user and global feed indexes as bounded
// newest-first queues over the store list primitives. Eviction policy:
// every push is followed by a trim to the cap , entries past the cap are
// dropped oldest first and are gone from that view for good. The post
// itself stays retrievable by id , the queue is never authoritative.
package timeline

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pattaranan1/Twitter-Cloning/store"
)

// Cap is the hard retained length of every timeline queue.
const Cap = 1000

const globalKey = "global:timeline"

func HomeKey(userID int64) string {
	return fmt.Sprintf("uid:%d:timeline", userID)
}

func GlobalKey() string {
	return globalKey
}

type Timeline struct {
	s   store.Store
	cap int64
}

func New(s store.Store) *Timeline {
	return &Timeline{s: s, cap: Cap}
}

// Push prepends postID and trims back to the cap. The two steps are not
// atomic as a pair , a concurrent push can see the queue one over the cap
// until the next trim lands. Self correcting , left alone.
func (t *Timeline) Push(ctx context.Context, key string, postID int64) error {
	if err := t.s.LPush(ctx, key, strconv.FormatInt(postID, 10)); err != nil {
		return err
	}
	return t.s.LTrim(ctx, key, 0, t.cap-1)
}

// Range reads up to limit newest-first post ids from the queue at key.
func (t *Timeline) Range(ctx context.Context, key string, limit int64) ([]int64, error) {
	if limit <= 0 || limit > t.cap {
		limit = t.cap
	}
	vals, err := t.s.LRange(ctx, key, 0, limit-1)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(vals))
	for _, v := range vals {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package store

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// memoryStore keeps the whole keyspace in process. It backs local runs and
// the test suites , same contract as the redis store.
type memoryStore struct {
	counters *xsync.MapOf[string, int64]
	kv       *xsync.MapOf[string, string]
	sets     *xsync.MapOf[string, *memorySet]
	lists    *xsync.MapOf[string, *memoryList]
}

type memorySet struct {
	mu sync.RWMutex
	m  map[string]struct{}
}

type memoryList struct {
	mu    sync.Mutex
	items []string
}

func NewMemoryStore() Store {
	return &memoryStore{
		counters: xsync.NewMapOf[string, int64](),
		kv:       xsync.NewMapOf[string, string](),
		sets:     xsync.NewMapOf[string, *memorySet](),
		lists:    xsync.NewMapOf[string, *memoryList](),
	}
}

func (ms *memoryStore) Incr(ctx context.Context, key string) (int64, error) {
	next, _ := ms.counters.Compute(key, func(old int64, _ bool) (int64, bool) {
		return old + 1, false
	})
	return next, nil
}

func (ms *memoryStore) Get(ctx context.Context, key string) (string, error) {
	val, ok := ms.kv.Load(key)
	if !ok {
		return "", ErrKeyNotFound
	}
	return val, nil
}

func (ms *memoryStore) Set(ctx context.Context, key string, value string) error {
	ms.kv.Store(key, value)
	return nil
}

func (ms *memoryStore) SetNX(ctx context.Context, key string, value string) (bool, error) {
	_, loaded := ms.kv.LoadOrStore(key, value)
	return !loaded, nil
}

func (ms *memoryStore) set(key string) *memorySet {
	s, _ := ms.sets.LoadOrCompute(key, func() *memorySet {
		return &memorySet{m: make(map[string]struct{})}
	})
	return s
}

func (ms *memoryStore) SAdd(ctx context.Context, key string, members ...string) error {
	s := ms.set(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range members {
		s.m[m] = struct{}{}
	}
	return nil
}

func (ms *memoryStore) SRem(ctx context.Context, key string, members ...string) error {
	s := ms.set(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range members {
		delete(s.m, m)
	}
	return nil
}

func (ms *memoryStore) SIsMember(ctx context.Context, key string, member string) (bool, error) {
	s := ms.set(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.m[member]
	return ok, nil
}

func (ms *memoryStore) SMembers(ctx context.Context, key string) ([]string, error) {
	s := ms.set(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]string, 0, len(s.m))
	for m := range s.m {
		members = append(members, m)
	}
	return members, nil
}

func (ms *memoryStore) SCard(ctx context.Context, key string) (int64, error) {
	s := ms.set(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.m)), nil
}

func (ms *memoryStore) list(key string) *memoryList {
	l, _ := ms.lists.LoadOrCompute(key, func() *memoryList {
		return &memoryList{}
	})
	return l
}

func (ms *memoryStore) LPush(ctx context.Context, key string, values ...string) error {
	l := ms.list(key)
	l.mu.Lock()
	defer l.mu.Unlock()
	// LPUSH semantics: each value lands at the head in argument order
	for _, v := range values {
		l.items = append([]string{v}, l.items...)
	}
	return nil
}

func (ms *memoryStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	l := ms.list(key)
	l.mu.Lock()
	defer l.mu.Unlock()
	n := int64(len(l.items))
	if start < 0 {
		start = n + start
	}
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if start >= n || stop < start {
		return nil, nil
	}
	if stop >= n {
		stop = n - 1
	}
	out := make([]string, stop-start+1)
	copy(out, l.items[start:stop+1])
	return out, nil
}

func (ms *memoryStore) LTrim(ctx context.Context, key string, start, stop int64) error {
	l := ms.list(key)
	l.mu.Lock()
	defer l.mu.Unlock()
	n := int64(len(l.items))
	if start < 0 {
		start = n + start
	}
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if start >= n || stop < start {
		l.items = nil
		return nil
	}
	if stop >= n {
		stop = n - 1
	}
	l.items = append([]string(nil), l.items[start:stop+1]...)
	return nil
}

func (ms *memoryStore) SortGet(ctx context.Context, key string, getPattern string, count int64) ([]string, error) {
	members, err := ms.SMembers(ctx, key)
	if err != nil {
		return nil, err
	}
	nums := make([]int64, 0, len(members))
	for _, m := range members {
		v, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] > nums[j] })
	if count >= 0 && int64(len(nums)) > count {
		nums = nums[:count]
	}
	out := make([]string, 0, len(nums))
	for _, v := range nums {
		resolved := strings.Replace(getPattern, "*", strconv.FormatInt(v, 10), 1)
		val, _ := ms.kv.Load(resolved)
		out = append(out, val)
	}
	return out, nil
}

func (ms *memoryStore) Close() error {
	return nil
}

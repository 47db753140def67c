package store

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestIncrIsUniqueUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	const workers = 50
	const perWorker = 100

	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id, err := ms.Incr(ctx, "global:nextPostId")
				if err != nil {
					t.Error("Incr failed:", err)
					return
				}
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers*perWorker)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id assigned: %d", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d ids, got %d", workers*perWorker, len(seen))
	}
}

func TestGetMissingKey(t *testing.T) {
	ms := NewMemoryStore()
	_, err := ms.Get(context.Background(), "username:ghost:id")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestSetNXClaimsOnce(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	won, err := ms.SetNX(ctx, "username:alice:id", "1")
	if err != nil || !won {
		t.Fatalf("first SetNX should win, got won=%v err=%v", won, err)
	}
	won, err = ms.SetNX(ctx, "username:alice:id", "2")
	if err != nil || won {
		t.Fatalf("second SetNX should lose, got won=%v err=%v", won, err)
	}
	val, err := ms.Get(ctx, "username:alice:id")
	if err != nil || val != "1" {
		t.Fatalf("expected first value kept, got %q err=%v", val, err)
	}
}

func TestSetOperations(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	ms.SAdd(ctx, "uid:1:followers", "2", "3")
	ms.SAdd(ctx, "uid:1:followers", "2")

	count, _ := ms.SCard(ctx, "uid:1:followers")
	if count != 2 {
		t.Fatalf("expected cardinality 2, got %d", count)
	}
	ok, _ := ms.SIsMember(ctx, "uid:1:followers", "3")
	if !ok {
		t.Fatal("expected 3 to be a member")
	}
	ms.SRem(ctx, "uid:1:followers", "3")
	ok, _ = ms.SIsMember(ctx, "uid:1:followers", "3")
	if ok {
		t.Fatal("expected 3 to be removed")
	}
}

func TestListPushRangeTrim(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	ms.LPush(ctx, "global:timeline", "1")
	ms.LPush(ctx, "global:timeline", "2")
	ms.LPush(ctx, "global:timeline", "3")

	vals, _ := ms.LRange(ctx, "global:timeline", 0, -1)
	if len(vals) != 3 || vals[0] != "3" || vals[2] != "1" {
		t.Fatalf("expected newest-first [3 2 1], got %v", vals)
	}

	ms.LTrim(ctx, "global:timeline", 0, 1)
	vals, _ = ms.LRange(ctx, "global:timeline", 0, -1)
	if len(vals) != 2 || vals[0] != "3" || vals[1] != "2" {
		t.Fatalf("expected trimmed [3 2], got %v", vals)
	}

	vals, _ = ms.LRange(ctx, "global:timeline", 0, 10)
	if len(vals) != 2 {
		t.Fatalf("out of bounds range should clamp, got %v", vals)
	}
}

func TestSortGetResolvesMembers(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	ms.SAdd(ctx, "global:users", "1", "2", "10")
	ms.Set(ctx, "uid:1:username", "alice")
	ms.Set(ctx, "uid:2:username", "bob")
	ms.Set(ctx, "uid:10:username", "carol")

	names, err := ms.SortGet(ctx, "global:users", "uid:*:username", 2)
	if err != nil {
		t.Fatal("SortGet failed:", err)
	}
	// descending numeric order , newest ids first
	if len(names) != 2 || names[0] != "carol" || names[1] != "bob" {
		t.Fatalf("expected [carol bob], got %v", names)
	}
}

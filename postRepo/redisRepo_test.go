package postRepo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pattaranan1/Twitter-Cloning/models"
	"github.com/pattaranan1/Twitter-Cloning/store"
)

func TestCreatePostRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRedisRepo(store.NewMemoryStore())

	now := time.Now().Unix()
	id, err := repo.CreatePost(ctx, 7, "hello world", now)
	if err != nil {
		t.Fatal("CreatePost failed:", err)
	}

	post, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatal("Get failed:", err)
	}
	if post.User_id != 7 || post.Content != "hello world" || post.Created_at != now {
		t.Fatalf("unexpected post: %+v", post)
	}
}

func TestCreatePostStripsNewlines(t *testing.T) {
	ctx := context.Background()
	repo := NewRedisRepo(store.NewMemoryStore())

	id, err := repo.CreatePost(ctx, 1, "line one\nline two\r\nend", time.Now().Unix())
	if err != nil {
		t.Fatal("CreatePost failed:", err)
	}
	post, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatal("Get failed:", err)
	}
	if post.Content != "line oneline twoend" {
		t.Fatalf("newlines must be removed, got %q", post.Content)
	}
}

func TestPipeInContentSurvives(t *testing.T) {
	ctx := context.Background()
	repo := NewRedisRepo(store.NewMemoryStore())

	id, _ := repo.CreatePost(ctx, 1, "a|b|c", time.Now().Unix())
	post, err := repo.Get(ctx, id)
	if err != nil || post.Content != "a|b|c" {
		t.Fatalf("delimiters inside text must round trip, got %q err=%v", post.Content, err)
	}
}

func TestGetMissingPost(t *testing.T) {
	repo := NewRedisRepo(store.NewMemoryStore())
	_, err := repo.Get(context.Background(), 42)
	if !errors.Is(err, models.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestConcurrentCreatesNeverShareIds(t *testing.T) {
	ctx := context.Background()
	repo := NewRedisRepo(store.NewMemoryStore())

	const writers = 20
	const perWriter = 25

	ids := make(chan int64, writers*perWriter)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				id, err := repo.CreatePost(ctx, int64(j), "post", time.Now().Unix())
				if err != nil {
					t.Error("CreatePost failed:", err)
					return
				}
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate post id: %d", id)
		}
		seen[id] = true
	}
}

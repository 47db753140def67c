package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/pattaranan1/Twitter-Cloning/feed"
	"github.com/pattaranan1/Twitter-Cloning/followRepo"
	"github.com/pattaranan1/Twitter-Cloning/models"
	"github.com/pattaranan1/Twitter-Cloning/postRepo"
	"github.com/pattaranan1/Twitter-Cloning/store"
	"github.com/pattaranan1/Twitter-Cloning/timeline"
	"github.com/pattaranan1/Twitter-Cloning/userRepo"
)

func newTestService(t *testing.T) *AppService {
	t.Helper()
	pub, prv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal("key generation failed:", err)
	}
	config := models.AppConfig{
		Server: models.ServerConfig{
			TimelinePage: 50,
			RecentUsers:  10,
		},
		JWTPrivateKey: prv,
		JWTPublicKey:  pub,
	}

	kv := store.NewMemoryStore()
	users := userRepo.NewRedisRepo(kv)
	follows := followRepo.NewRedisRepo(kv)
	posts := postRepo.NewRedisRepo(kv)
	pushFeed := feed.NewPushFeed(timeline.New(kv), posts, follows, users, 100)
	return NewAppService(users, follows, posts, pushFeed, nil, config)
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	id, err := s.Signup(ctx, "alice", "secret1")
	if err != nil {
		t.Fatal("Signup failed:", err)
	}

	gotID, token, err := s.Login(ctx, "alice", "secret1")
	if err != nil {
		t.Fatal("Login failed:", err)
	}
	if gotID != id {
		t.Fatalf("Login returned id %d, want %d", gotID, id)
	}
	if token.Token == "" {
		t.Fatal("Login must issue a token")
	}

	tokenID, err := ValidateToken(token.Token, s.config)
	if err != nil || tokenID != id {
		t.Fatalf("token round trip failed: id=%d err=%v", tokenID, err)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	if _, err := s.Signup(ctx, "alice", "secret1"); err != nil {
		t.Fatal("Signup failed:", err)
	}
	_, err := s.Signup(ctx, "alice", "other123")
	if !errors.Is(err, models.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestLoginRejections(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	if _, _, err := s.Login(ctx, "ghost", "whatever"); !errors.Is(err, models.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}

	s.Signup(ctx, "bob", "secret1")
	if _, _, err := s.Login(ctx, "bob", "wrongpw"); !errors.Is(err, models.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestSubmitPostFansOutToFollowers(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	author, _ := s.Signup(ctx, "author", "secret1")
	f1, _ := s.Signup(ctx, "f1", "secret1")
	f2, _ := s.Signup(ctx, "f2", "secret1")

	if _, err := s.SetFollow(ctx, f1, author, "1"); err != nil {
		t.Fatal("SetFollow failed:", err)
	}
	if _, err := s.SetFollow(ctx, f2, author, "1"); err != nil {
		t.Fatal("SetFollow failed:", err)
	}

	if _, err := s.SubmitPost(ctx, author, "hello\neveryone"); err != nil {
		t.Fatal("SubmitPost failed:", err)
	}

	for _, uid := range []int64{author, f1, f2} {
		views, err := s.HomeTimeline(ctx, uid)
		if err != nil {
			t.Fatal("HomeTimeline failed:", err)
		}
		if len(views) != 1 || views[0].UserName != "author" {
			t.Fatalf("user %d timeline wrong: %v", uid, views)
		}
		if views[0].Content != "helloeveryone" {
			t.Fatalf("newline must be stripped, got %q", views[0].Content)
		}
	}
}

func TestHomeTimelineSentinelFallsBackToGlobal(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	author, _ := s.Signup(ctx, "author", "secret1")
	s.SubmitPost(ctx, author, "visible to all")

	views, err := s.HomeTimeline(ctx, 0)
	if err != nil {
		t.Fatal("HomeTimeline failed:", err)
	}
	if len(views) != 1 || views[0].Content != "visible to all" {
		t.Fatalf("sentinel id must read the global timeline, got %v", views)
	}
}

func TestSetFollowInvalidOperation(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	a, _ := s.Signup(ctx, "a1", "secret1")
	b, _ := s.Signup(ctx, "b1", "secret1")

	if _, err := s.SetFollow(ctx, a, b, "2"); !errors.Is(err, models.ErrInvalidOperation) {
		t.Fatalf("expected ErrInvalidOperation, got %v", err)
	}
	// the rejected request must not have mutated anything
	profile, _ := s.Profile(ctx, b, a)
	if profile.IsFollowing {
		t.Fatal("invalid op must not create a follow edge")
	}
}

func TestSetFollowSelfIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	a, _ := s.Signup(ctx, "selfie", "secret1")
	name, err := s.SetFollow(ctx, a, a, "1")
	if err != nil {
		t.Fatal("self follow must not error:", err)
	}
	if name != "selfie" {
		t.Fatalf("expected own username back, got %q", name)
	}
	profile, _ := s.Profile(ctx, a, a)
	if !profile.Self || profile.IsFollowing {
		t.Fatalf("unexpected profile after self follow: %+v", profile)
	}
}

func TestProfileView(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	a, _ := s.Signup(ctx, "a1", "secret1")
	b, _ := s.Signup(ctx, "b1", "secret1")

	profile, err := s.Profile(ctx, a, a)
	if err != nil || !profile.Self {
		t.Fatalf("subject == viewer must be self: %+v err=%v", profile, err)
	}

	s.SetFollow(ctx, a, b, "1")
	profile, err = s.Profile(ctx, b, a)
	if err != nil || profile.Self || !profile.IsFollowing {
		t.Fatalf("expected following profile: %+v err=%v", profile, err)
	}

	s.SetFollow(ctx, a, b, "0")
	profile, _ = s.Profile(ctx, b, a)
	if profile.IsFollowing {
		t.Fatal("unfollow must clear is_following")
	}

	if _, err := s.Profile(ctx, 999, a); !errors.Is(err, models.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser for missing profile, got %v", err)
	}
}

func TestFollowStats(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	a, _ := s.Signup(ctx, "a1", "secret1")
	b, _ := s.Signup(ctx, "b1", "secret1")
	c, _ := s.Signup(ctx, "c1", "secret1")

	s.SetFollow(ctx, a, b, "1")
	s.SetFollow(ctx, c, b, "1")

	following, followers, err := s.FollowStats(ctx, b)
	if err != nil {
		t.Fatal("FollowStats failed:", err)
	}
	if following != 0 || followers != 2 {
		t.Fatalf("expected 0 following / 2 followers, got %d/%d", following, followers)
	}
}

func TestRecentUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	for _, name := range []string{"u_one", "u_two", "u_three"} {
		s.Signup(ctx, name, "secret1")
	}
	users, err := s.RecentUsers(ctx)
	if err != nil {
		t.Fatal("RecentUsers failed:", err)
	}
	if len(users) != 3 || users[0] != "u_three" {
		t.Fatalf("expected newest first, got %v", users)
	}
}

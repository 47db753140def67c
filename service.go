package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/pattaranan1/Twitter-Cloning/feed"
	"github.com/pattaranan1/Twitter-Cloning/followRepo"
	"github.com/pattaranan1/Twitter-Cloning/models"
	"github.com/pattaranan1/Twitter-Cloning/postRepo"
	"github.com/pattaranan1/Twitter-Cloning/userRepo"
	"golang.org/x/crypto/bcrypt"
)

const (
	followOp   = "1"
	unfollowOp = "0"

	defaultTimelinePage = 50
	defaultRecentUsers  = 10
)

// AppService is the surface the web layer calls. Every operation takes the
// caller id explicitly , there is no ambient logged-in state in here.
type AppService struct {
	users    userRepo.UserRepo
	follows  followRepo.FollowRepo
	posts    postRepo.PostRepo
	feed     feed.Feed
	producer *Producer
	config   models.AppConfig
}

func NewAppService(users userRepo.UserRepo, follows followRepo.FollowRepo, posts postRepo.PostRepo, f feed.Feed, producer *Producer, config models.AppConfig) *AppService {
	return &AppService{
		users:    users,
		follows:  follows,
		posts:    posts,
		feed:     f,
		producer: producer,
		config:   config,
	}
}

func (s *AppService) Signup(ctx context.Context, username string, password string) (int64, error) {
	if err := check(username, password); err != nil {
		return 0, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	id, err := s.users.CreateUser(ctx, username, string(hashed))
	if err != nil {
		return 0, err
	}
	log.Printf("User{%v} created with id{%v}", username, id)
	return id, nil
}

// Login checks the stored hash and hands back the user id plus a signed
// token for the web layer to carry.
func (s *AppService) Login(ctx context.Context, username string, password string) (int64, models.TokenResponse, error) {
	user, err := s.users.GetCredential(ctx, username)
	if err != nil {
		return 0, models.TokenResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return 0, models.TokenResponse{}, models.ErrInvalidCredential
	}
	token, err := IssueToken(user.UserID, s.config)
	if err != nil {
		log.Printf("Failed to issue token for user{%v}: %v", user.UserID, err.Error())
		return 0, models.TokenResponse{}, err
	}
	return user.UserID, models.TokenResponse{Token: token}, nil
}

// SubmitPost persists the post and hands it to the fanout path. With async
// fanout on , the post event goes through Kafka and the FanoutWriter picks
// it up , otherwise the timelines are pushed right here. Fanout trouble is
// logged and never fails the submit.
func (s *AppService) SubmitPost(ctx context.Context, userID int64, text string) (int64, error) {
	createdAt := time.Now().Unix()
	id, err := s.posts.CreatePost(ctx, userID, text, createdAt)
	if err != nil {
		log.Printf("Failed to create post for user{%v}: %v\n", userID, err.Error())
		return 0, err
	}
	item := models.FeedItem{
		PostId:     id,
		UserId:     userID,
		Created_at: createdAt,
	}
	if s.producer != nil {
		if err := s.producer.ProduceFeedItem(item); err != nil {
			log.Printf("Failed to publish post{%v} , falling back to direct fanout: %v\n", id, err.Error())
			if err := s.feed.FanoutPost(ctx, item); err != nil {
				log.Printf("Fanout for post{%v} incomplete: %v\n", id, err.Error())
			}
		}
		return id, nil
	}
	if err := s.feed.FanoutPost(ctx, item); err != nil {
		log.Printf("Fanout for post{%v} incomplete: %v\n", id, err.Error())
	}
	return id, nil
}

// SetFollow applies a follow toggle. The intent flag must be "1" (follow)
// or "0" (unfollow) , anything else is rejected without touching state.
// Returns the username of the target so the caller can redirect to it.
func (s *AppService) SetFollow(ctx context.Context, followerID, followedID int64, op string) (string, error) {
	if op != followOp && op != unfollowOp {
		return "", models.ErrInvalidOperation
	}
	username, err := s.users.GetUserName(ctx, followedID)
	if err != nil {
		return "", err
	}
	if followerID == followedID {
		return username, nil
	}
	if op == followOp {
		err = s.follows.Follow(ctx, followerID, followedID)
	} else {
		err = s.follows.Unfollow(ctx, followerID, followedID)
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

// HomeTimeline returns the viewer's feed. A non-positive id is the
// sentinel for "no user" and falls back to the global timeline.
func (s *AppService) HomeTimeline(ctx context.Context, userID int64) ([]models.PostView, error) {
	limit := s.config.Server.TimelinePage
	if limit <= 0 {
		limit = defaultTimelinePage
	}
	if userID <= 0 {
		return s.feed.GlobalTimeline(ctx, limit)
	}
	return s.feed.HomeTimeline(ctx, userID, limit)
}

func (s *AppService) GlobalTimeline(ctx context.Context, limit int64) ([]models.PostView, error) {
	if limit <= 0 {
		limit = s.config.Server.TimelinePage
	}
	if limit <= 0 {
		limit = defaultTimelinePage
	}
	return s.feed.GlobalTimeline(ctx, limit)
}

func (s *AppService) Profile(ctx context.Context, subjectID, viewerID int64) (models.ProfileView, error) {
	if _, err := s.users.GetUserName(ctx, subjectID); err != nil {
		return models.ProfileView{}, err
	}
	profile := models.ProfileView{
		UserID: subjectID,
		Self:   subjectID == viewerID,
	}
	if profile.Self {
		return profile, nil
	}
	isFollowing, err := s.follows.IsFollowing(ctx, viewerID, subjectID)
	if err != nil {
		return models.ProfileView{}, err
	}
	profile.IsFollowing = isFollowing
	return profile, nil
}

// FollowStats backs the counters on the home page.
func (s *AppService) FollowStats(ctx context.Context, userID int64) (following int64, followers int64, err error) {
	following, err = s.follows.FollowingCount(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	followers, err = s.follows.FollowerCount(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return following, followers, nil
}

func (s *AppService) RecentUsers(ctx context.Context) ([]string, error) {
	limit := s.config.Server.RecentUsers
	if limit <= 0 {
		limit = defaultRecentUsers
	}
	return s.users.RecentUsers(ctx, limit)
}

func (s *AppService) StartHealthServer() error {
	router := http.NewServeMux()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok" , "service": "microblog"}`))
	})
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.HealthPort)
	log.Printf("Starting health server on %s", addr)
	return http.ListenAndServe(addr, router)
}

// IsUserFacing reports whether an error should reach the caller as a
// rejection rather than be logged as internal.
func IsUserFacing(err error) bool {
	return errors.Is(err, models.ErrDuplicateUsername) ||
		errors.Is(err, models.ErrUnknownUser) ||
		errors.Is(err, models.ErrInvalidCredential) ||
		errors.Is(err, models.ErrInvalidOperation)
}

package feed

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/pattaranan1/Twitter-Cloning/followRepo"
	"github.com/pattaranan1/Twitter-Cloning/models"
	"github.com/pattaranan1/Twitter-Cloning/postRepo"
	"github.com/pattaranan1/Twitter-Cloning/timeline"
	"github.com/pattaranan1/Twitter-Cloning/userRepo"
)

// PushFeed is the fan-out-on-write engine. Reads become an O(1) list
// slice , writes amplify by the follower count and history is bounded by
// the timeline cap.
type PushFeed struct {
	tl      *timeline.Timeline
	posts   postRepo.PostRepo
	follows followRepo.FollowRepo
	users   userRepo.UserRepo

	// followers handled per goroutine during fanout
	workerThreshold int
	now             func() time.Time
}

func NewPushFeed(tl *timeline.Timeline, posts postRepo.PostRepo, follows followRepo.FollowRepo, users userRepo.UserRepo, workerThreshold int) *PushFeed {
	if workerThreshold <= 0 {
		workerThreshold = 100
	}
	return &PushFeed{
		tl:              tl,
		posts:           posts,
		follows:         follows,
		users:           users,
		workerThreshold: workerThreshold,
		now:             time.Now,
	}
}

// FanoutPost pushes the post id onto the author timeline , every follower
// timeline and the global one. A push that fails mid loop leaves some
// timelines behind , that is accepted eventual-consistency noise and is
// only logged , never bubbled into the submit path.
func (pf *PushFeed) FanoutPost(ctx context.Context, item models.FeedItem) error {
	followers, err := pf.follows.Followers(ctx, item.UserId)
	if err != nil {
		return err
	}
	targets := append(followers, item.UserId)

	var wg sync.WaitGroup
	for start := 0; start < len(targets); start += pf.workerThreshold {
		end := min(start+pf.workerThreshold, len(targets))
		wg.Add(1)
		go func(ids []int64) {
			defer wg.Done()
			for _, id := range ids {
				if err := pf.tl.Push(ctx, timeline.HomeKey(id), item.PostId); err != nil {
					log.Printf("Failed to fanout post{%v} to user{%v}: %v\n", item.PostId, id, err.Error())
				}
			}
		}(targets[start:end])
	}
	wg.Wait()

	if err := pf.tl.Push(ctx, timeline.GlobalKey(), item.PostId); err != nil {
		log.Printf("Failed to push post{%v} to global timeline: %v\n", item.PostId, err.Error())
	}
	return nil
}

func (pf *PushFeed) HomeTimeline(ctx context.Context, userID int64, limit int64) ([]models.PostView, error) {
	ids, err := pf.tl.Range(ctx, timeline.HomeKey(userID), limit)
	if err != nil {
		return nil, err
	}
	return pf.hydrate(ctx, ids), nil
}

func (pf *PushFeed) GlobalTimeline(ctx context.Context, limit int64) ([]models.PostView, error) {
	ids, err := pf.tl.Range(ctx, timeline.GlobalKey(), limit)
	if err != nil {
		return nil, err
	}
	return pf.hydrate(ctx, ids), nil
}

// hydrate resolves post ids into views. A reference whose post is gone is
// skipped , the store may have evicted it under the timeline reference.
func (pf *PushFeed) hydrate(ctx context.Context, ids []int64) []models.PostView {
	now := pf.now()
	views := make([]models.PostView, 0, len(ids))
	for _, id := range ids {
		post, err := pf.posts.Get(ctx, id)
		if errors.Is(err, models.ErrPostNotFound) {
			continue
		}
		if err != nil {
			log.Printf("Failed to hydrate post{%v}: %v\n", id, err.Error())
			continue
		}
		username, err := pf.users.GetUserName(ctx, post.User_id)
		if err != nil {
			// same treatment as a dangling post reference , no blank
			// authors in the timeline
			log.Printf("Failed to resolve author of post{%v}: %v\n", id, err.Error())
			continue
		}
		views = append(views, models.PostView{
			Content:  post.Content,
			UserName: username,
			Elapsed:  ElapsedLabel(post.CreatedTime(), now),
		})
	}
	return views
}

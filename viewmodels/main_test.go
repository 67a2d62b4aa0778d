package viewmodels_test

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/services"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newMock() *services.MockDataService {
	return services.NewMockDataService(
		services.WithDelay(2*time.Millisecond),
		services.WithRand(rand.New(rand.NewSource(1))),
	)
}

// fakeService wraps the mock, counts calls, and can hold calls at a gate
// until released.
type fakeService struct {
	*services.MockDataService

	gate      chan struct{}
	ignoreCtx bool
	// followingPosts replaces the following feed when set.
	followingPosts []*model.Post

	following atomic.Int32
	global    atomic.Int32
	albums    atomic.Int32
	created   atomic.Int32

	releaseOnce sync.Once
}

func newFakeService() *fakeService {
	return &fakeService{MockDataService: newMock()}
}

func (f *fakeService) gated(ignoreCtx bool) *fakeService {
	f.gate = make(chan struct{})
	f.ignoreCtx = ignoreCtx
	return f
}

func (f *fakeService) release() {
	f.releaseOnce.Do(func() {
		if f.gate != nil {
			close(f.gate)
		}
	})
}

func (f *fakeService) wait(ctx context.Context) error {
	if f.gate == nil {
		return nil
	}
	if f.ignoreCtx {
		<-f.gate
		return nil
	}
	select {
	case <-f.gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeService) FetchRandomFollowingPosts(ctx context.Context, userId string) ([]*model.Post, error) {
	f.following.Add(1)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.followingPosts != nil {
		return f.followingPosts, nil
	}
	return f.MockDataService.FetchRandomFollowingPosts(ctx, userId)
}

func (f *fakeService) FetchRandomGlobalPosts(ctx context.Context) ([]*model.Post, error) {
	f.global.Add(1)
	return f.MockDataService.FetchRandomGlobalPosts(ctx)
}

func (f *fakeService) FetchAlbums(ctx context.Context) ([]*model.Album, error) {
	f.albums.Add(1)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.MockDataService.FetchAlbums(ctx)
}

func (f *fakeService) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	f.created.Add(1)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.MockDataService.CreatePost(ctx, post)
}

// recorder collects every state a subscriber sees.
type recorder[S any] struct {
	lock   sync.Mutex
	states []S
}

func (r *recorder[S]) record(s S) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder[S]) all() []S {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]S(nil), r.states...)
}

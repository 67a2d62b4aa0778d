package viewmodels

import (
	"context"

	"github.com/navbryce/daily-sns/app"
	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/services"
	"go.uber.org/zap"
)

type FeedState struct {
	Posts        []*model.Post
	FeedType     app.FeedType
	IsLoading    bool
	ErrorMessage string
}

func (s FeedState) HasError() bool {
	return s.ErrorMessage != ""
}

// FeedViewModel drives the following/global post feed.
type FeedViewModel struct {
	state         *Observable[FeedState]
	dataService   services.DataService
	currentUserId string
	tasks         *runner
	logger        *zap.Logger
}

func NewFeedViewModel(currentUserId string, dataService services.DataService, opts ...Option) *FeedViewModel {
	o := buildOptions(opts)
	return &FeedViewModel{
		state: NewObservable(FeedState{
			Posts:    []*model.Post{},
			FeedType: app.FeedTypeFollowing,
		}),
		dataService:   dataService,
		currentUserId: currentUserId,
		tasks:         newRunner(o.ctx, o.dispatch),
		logger:        o.logger.With(zap.String("viewModel", "feed")),
	}
}

func (vm *FeedViewModel) Get() FeedState {
	return vm.state.Get()
}

func (vm *FeedViewModel) Subscribe(fn func(FeedState)) (unsubscribe func()) {
	return vm.state.Subscribe(fn)
}

// FetchPosts loads the feed selected by the current feed type, cancelling
// any fetch already in flight. Returns nil after Close.
func (vm *FeedViewModel) FetchPosts() *Task {
	var task *Task
	vm.state.Update(func(s *FeedState) bool {
		feedType := s.FeedType
		task = vm.tasks.run(func(ctx context.Context) func(*Task) {
			posts, err := app.FetchFeed(ctx, vm.dataService, vm.currentUserId, feedType)
			return func(t *Task) {
				vm.state.Update(func(s *FeedState) bool {
					switch vm.tasks.settle(t) {
					case settleStale:
						return false
					case settleCancelled:
						s.IsLoading = false
						return true
					}
					s.IsLoading = false
					if err != nil {
						vm.logger.Warn("failed to fetch posts", zap.String("feedType", string(feedType)), zap.Error(err))
						s.ErrorMessage = err.Error()
						return true
					}
					if posts == nil {
						posts = []*model.Post{}
					}
					s.Posts = posts
					return true
				})
			}
		})
		if task == nil {
			return false
		}
		s.IsLoading = true
		s.ErrorMessage = ""
		return true
	})
	return task
}

// SwitchFeedType commits the new feed type and starts a fetch for it.
// Switching to the active type does nothing and returns nil.
func (vm *FeedViewModel) SwitchFeedType(feedType app.FeedType) *Task {
	_, changed := vm.state.Update(func(s *FeedState) bool {
		if s.FeedType == feedType {
			return false
		}
		s.FeedType = feedType
		return true
	})
	if !changed {
		return nil
	}
	return vm.FetchPosts()
}

func (vm *FeedViewModel) Refresh() *Task {
	return vm.FetchPosts()
}

// Close cancels the in-flight fetch and waits for it to exit. It must not
// be called from a subscriber.
func (vm *FeedViewModel) Close() {
	vm.tasks.close()
}

package viewmodels

import (
	"context"

	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/services"
	"github.com/navbryce/daily-sns/util"
	"go.uber.org/zap"
)

type PostCreationState struct {
	Items          []*model.PostItem
	IsCreatingPost bool
	// CurrentItemType is the kind the composer suggests adding next.
	CurrentItemType model.PostItemType
	LastCreated     *model.Post
	ErrorMessage    string
}

func (s PostCreationState) ActiveItems() []*model.PostItem {
	return model.ActiveItems(s.Items)
}

// CanSubmit reports whether an active screenshot exists. Comments alone
// never make a post.
func (s PostCreationState) CanSubmit() bool {
	return model.HasScreenshot(s.Items)
}

// PostCreationViewModel composes a post out of screenshots and comments.
// Removing an item soft deletes it; deleted items stay in Items and are
// left out of the created post.
type PostCreationViewModel struct {
	state       *Observable[PostCreationState]
	dataService services.DataService
	tasks       *runner
	logger      *zap.Logger
}

func NewPostCreationViewModel(dataService services.DataService, opts ...Option) *PostCreationViewModel {
	o := buildOptions(opts)
	return &PostCreationViewModel{
		state:       NewObservable(initialPostCreationState()),
		dataService: dataService,
		tasks:       newRunner(o.ctx, o.dispatch),
		logger:      o.logger.With(zap.String("viewModel", "postCreation")),
	}
}

func (vm *PostCreationViewModel) Get() PostCreationState {
	return vm.state.Get()
}

func (vm *PostCreationViewModel) Subscribe(fn func(PostCreationState)) (unsubscribe func()) {
	return vm.state.Subscribe(fn)
}

func initialPostCreationState() PostCreationState {
	return PostCreationState{
		Items:           []*model.PostItem{},
		CurrentItemType: model.PostItemTypeScreenshot,
	}
}

func (vm *PostCreationViewModel) AddScreenshot(imageURL string) {
	item := model.NewPostItem(model.PostItemTypeScreenshot, imageURL)
	vm.state.Update(func(s *PostCreationState) bool {
		s.Items = appendItem(s.Items, item)
		s.CurrentItemType = model.PostItemTypeComment
		return true
	})
}

// AddComment ignores blank text.
func (vm *PostCreationViewModel) AddComment(text string) {
	if util.IsBlank(text) {
		return
	}
	item := model.NewPostItem(model.PostItemTypeComment, text)
	vm.state.Update(func(s *PostCreationState) bool {
		s.Items = appendItem(s.Items, item)
		s.CurrentItemType = model.PostItemTypeScreenshot
		return true
	})
}

// RemoveItemAt soft deletes the item at index. Out of range indexes and
// already deleted items are ignored.
func (vm *PostCreationViewModel) RemoveItemAt(index int) {
	vm.state.Update(func(s *PostCreationState) bool {
		if index < 0 || index >= len(s.Items) || s.Items[index].IsDeleted {
			return false
		}
		s.Items = softDelete(s.Items, index)
		return true
	})
}

// RemoveItem soft deletes the item with id, if present.
func (vm *PostCreationViewModel) RemoveItem(id string) {
	vm.state.Update(func(s *PostCreationState) bool {
		for i, item := range s.Items {
			if item.Id == id {
				if item.IsDeleted {
					return false
				}
				s.Items = softDelete(s.Items, i)
				return true
			}
		}
		return false
	})
}

// CreatePost builds a post from the active items. State is left as is;
// call Reset to start over.
func (vm *PostCreationViewModel) CreatePost(userId string) *model.Post {
	return model.NewPost(userId, model.CloneItems(vm.Get().ActiveItems()))
}

func (vm *PostCreationViewModel) CanSubmit() bool {
	return vm.Get().CanSubmit()
}

// Submit sends the composed post through the data service. It returns nil
// without doing anything when the post cannot be submitted, a submission
// is already running, or the view model is closed. The echoed post lands
// in LastCreated; state is not reset.
func (vm *PostCreationViewModel) Submit(userId string) *Task {
	var task *Task
	vm.state.Update(func(s *PostCreationState) bool {
		if s.IsCreatingPost || !s.CanSubmit() {
			return false
		}
		post := model.NewPost(userId, model.CloneItems(s.ActiveItems()))
		task = vm.tasks.run(func(ctx context.Context) func(*Task) {
			created, err := vm.dataService.CreatePost(ctx, post)
			return func(t *Task) {
				vm.state.Update(func(s *PostCreationState) bool {
					switch vm.tasks.settle(t) {
					case settleStale:
						return false
					case settleCancelled:
						s.IsCreatingPost = false
						return true
					}
					s.IsCreatingPost = false
					if err != nil {
						vm.logger.Warn("failed to create post", zap.String("userId", userId), zap.Error(err))
						s.ErrorMessage = err.Error()
						return true
					}
					s.LastCreated = created
					return true
				})
			}
		})
		if task == nil {
			return false
		}
		s.IsCreatingPost = true
		s.ErrorMessage = ""
		return true
	})
	return task
}

// Reset clears the composition and cancels a running submission.
func (vm *PostCreationViewModel) Reset() {
	vm.state.Update(func(s *PostCreationState) bool {
		vm.tasks.cancelCurrent()
		lastCreated := s.LastCreated
		*s = initialPostCreationState()
		s.LastCreated = lastCreated
		return true
	})
}

// Close cancels a running submission and waits for it to exit.
func (vm *PostCreationViewModel) Close() {
	vm.tasks.close()
}

func appendItem(items []*model.PostItem, item *model.PostItem) []*model.PostItem {
	next := make([]*model.PostItem, len(items), len(items)+1)
	copy(next, items)
	return append(next, item)
}

func softDelete(items []*model.PostItem, index int) []*model.PostItem {
	next := make([]*model.PostItem, len(items))
	copy(next, items)
	deleted := *items[index]
	deleted.IsDeleted = true
	next[index] = &deleted
	return next
}

package viewmodels

import (
	"context"

	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/services"
	"go.uber.org/zap"
)

type AlbumState struct {
	Albums        []*model.Album
	SelectedAlbum *model.Album
	IsLoading     bool
	ErrorMessage  string
}

func (s AlbumState) HasError() bool {
	return s.ErrorMessage != ""
}

type AlbumViewModel struct {
	state       *Observable[AlbumState]
	dataService services.DataService
	tasks       *runner
	logger      *zap.Logger
}

func NewAlbumViewModel(dataService services.DataService, opts ...Option) *AlbumViewModel {
	o := buildOptions(opts)
	return &AlbumViewModel{
		state:       NewObservable(AlbumState{Albums: []*model.Album{}}),
		dataService: dataService,
		tasks:       newRunner(o.ctx, o.dispatch),
		logger:      o.logger.With(zap.String("viewModel", "album")),
	}
}

func (vm *AlbumViewModel) Get() AlbumState {
	return vm.state.Get()
}

func (vm *AlbumViewModel) Subscribe(fn func(AlbumState)) (unsubscribe func()) {
	return vm.state.Subscribe(fn)
}

// FetchAlbums loads every album, cancelling any fetch already in flight.
// Returns nil after Close.
func (vm *AlbumViewModel) FetchAlbums() *Task {
	var task *Task
	vm.state.Update(func(s *AlbumState) bool {
		task = vm.tasks.run(func(ctx context.Context) func(*Task) {
			albums, err := vm.dataService.FetchAlbums(ctx)
			return func(t *Task) {
				vm.state.Update(func(s *AlbumState) bool {
					switch vm.tasks.settle(t) {
					case settleStale:
						return false
					case settleCancelled:
						s.IsLoading = false
						return true
					}
					s.IsLoading = false
					if err != nil {
						vm.logger.Warn("failed to fetch albums", zap.Error(err))
						s.ErrorMessage = err.Error()
						return true
					}
					if albums == nil {
						albums = []*model.Album{}
					}
					s.Albums = albums
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

func (vm *AlbumViewModel) SelectAlbum(album *model.Album) {
	vm.state.Update(func(s *AlbumState) bool {
		s.SelectedAlbum = album
		return true
	})
}

func (vm *AlbumViewModel) ClearSelection() {
	vm.state.Update(func(s *AlbumState) bool {
		if s.SelectedAlbum == nil {
			return false
		}
		s.SelectedAlbum = nil
		return true
	})
}

// Close cancels the in-flight fetch and waits for it to exit.
func (vm *AlbumViewModel) Close() {
	vm.tasks.close()
}

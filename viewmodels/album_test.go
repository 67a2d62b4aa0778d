package viewmodels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/services"
	"github.com/navbryce/daily-sns/viewmodels"
)

func TestAlbumViewModel_FetchAlbums(t *testing.T) {
	vm := viewmodels.NewAlbumViewModel(newMock())
	defer vm.Close()

	task := vm.FetchAlbums()
	assert.True(t, vm.Get().IsLoading)
	task.Wait()

	state := vm.Get()
	require.Len(t, state.Albums, 3)
	assert.False(t, state.IsLoading)
	assert.False(t, state.HasError())
	for _, album := range state.Albums {
		assert.Len(t, album.Posts, 3)
	}
}

func TestAlbumViewModel_FetchFailure(t *testing.T) {
	svc := newMock()
	svc.FailWith(services.ErrOperationFailed)
	vm := viewmodels.NewAlbumViewModel(svc)
	defer vm.Close()

	vm.FetchAlbums().Wait()
	state := vm.Get()
	assert.Empty(t, state.Albums)
	assert.Equal(t, "operation failed", state.ErrorMessage)
	assert.False(t, state.IsLoading)
}

func TestAlbumViewModel_Selection(t *testing.T) {
	vm := viewmodels.NewAlbumViewModel(newMock())
	defer vm.Close()

	rec := &recorder[viewmodels.AlbumState]{}
	vm.Subscribe(rec.record)

	album := model.NewAlbum(model.NewUser("test", "Test User"), nil)
	vm.SelectAlbum(album)
	require.NotNil(t, vm.Get().SelectedAlbum)
	assert.Equal(t, "Test User", vm.Get().SelectedAlbum.UserName)

	vm.ClearSelection()
	assert.Nil(t, vm.Get().SelectedAlbum)

	// clearing twice commits nothing
	vm.ClearSelection()
	assert.Len(t, rec.all(), 2)
}

func TestAlbumViewModel_CloseCancelsInFlight(t *testing.T) {
	svc := newFakeService().gated(false)
	vm := viewmodels.NewAlbumViewModel(svc)

	task := vm.FetchAlbums()
	vm.Close()
	<-task.Done()
	assert.Nil(t, vm.FetchAlbums())
	assert.Equal(t, int32(1), svc.albums.Load())
}

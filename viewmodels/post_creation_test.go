package viewmodels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/services"
	"github.com/navbryce/daily-sns/viewmodels"
)

func TestPostCreationViewModel_Defaults(t *testing.T) {
	vm := viewmodels.NewPostCreationViewModel(newMock())
	defer vm.Close()

	state := vm.Get()
	assert.Empty(t, state.Items)
	assert.False(t, state.IsCreatingPost)
	assert.Equal(t, model.PostItemTypeScreenshot, state.CurrentItemType)
	assert.False(t, vm.CanSubmit())
}

func TestPostCreationViewModel_AddScreenshot(t *testing.T) {
	vm := viewmodels.NewPostCreationViewModel(newMock())
	defer vm.Close()

	vm.AddScreenshot("test.jpg")
	state := vm.Get()
	require.Len(t, state.Items, 1)
	assert.Equal(t, model.PostItemTypeScreenshot, state.Items[0].Type)
	assert.Equal(t, "test.jpg", state.Items[0].Content)
	assert.Equal(t, model.PostItemTypeComment, state.CurrentItemType)
}

func TestPostCreationViewModel_AddComment(t *testing.T) {
	vm := viewmodels.NewPostCreationViewModel(newMock())
	defer vm.Close()

	vm.AddScreenshot("test.jpg")
	vm.AddComment("Test comment")
	state := vm.Get()
	require.Len(t, state.Items, 2)
	assert.Equal(t, model.PostItemTypeComment, state.Items[1].Type)
	assert.Equal(t, model.PostItemTypeScreenshot, state.CurrentItemType)
}

func TestPostCreationViewModel_BlankCommentIsIgnored(t *testing.T) {
	vm := viewmodels.NewPostCreationViewModel(newMock())
	defer vm.Close()

	vm.AddScreenshot("test.jpg")
	before := vm.Get()
	notified := 0
	vm.Subscribe(func(viewmodels.PostCreationState) { notified++ })

	vm.AddComment("")
	vm.AddComment("   \t\n")
	assert.Equal(t, before, vm.Get())
	assert.Zero(t, notified)
}

func TestPostCreationViewModel_RemoveSoftDeletes(t *testing.T) {
	vm := viewmodels.NewPostCreationViewModel(newMock())
	defer vm.Close()

	vm.AddScreenshot("a.jpg")
	vm.AddComment("b")
	vm.AddScreenshot("c.jpg")
	snapshot := vm.Get()

	vm.RemoveItemAt(0)
	vm.RemoveItem(vm.Get().Items[1].Id)

	state := vm.Get()
	require.Len(t, state.Items, 3)
	assert.True(t, state.Items[0].IsDeleted)
	assert.True(t, state.Items[1].IsDeleted)
	assert.False(t, state.Items[2].IsDeleted)
	require.Len(t, state.ActiveItems(), 1)
	assert.Equal(t, "c.jpg", state.ActiveItems()[0].Content)

	// earlier snapshots are untouched
	for _, item := range snapshot.Items {
		assert.False(t, item.IsDeleted)
	}
}

func TestPostCreationViewModel_RemoveOutOfRangeIsNoop(t *testing.T) {
	vm := viewmodels.NewPostCreationViewModel(newMock())
	defer vm.Close()

	vm.AddScreenshot("a.jpg")
	before := vm.Get()
	vm.RemoveItemAt(-1)
	vm.RemoveItemAt(1)
	vm.RemoveItem("missing")
	assert.Equal(t, before, vm.Get())
}

func TestPostCreationViewModel_CanSubmit(t *testing.T) {
	vm := viewmodels.NewPostCreationViewModel(newMock())
	defer vm.Close()

	assert.False(t, vm.CanSubmit())
	vm.AddComment("only a comment")
	assert.False(t, vm.CanSubmit())
	vm.AddScreenshot("test.jpg")
	assert.True(t, vm.CanSubmit())
	vm.AddComment("Comment")
	assert.True(t, vm.CanSubmit())

	vm.RemoveItemAt(1)
	assert.False(t, vm.CanSubmit())
}

func TestPostCreationViewModel_CreatePost(t *testing.T) {
	vm := viewmodels.NewPostCreationViewModel(newMock())
	defer vm.Close()

	vm.AddScreenshot("a.jpg")
	vm.AddComment("gone")
	vm.AddComment("kept")
	vm.RemoveItemAt(1)

	post := vm.CreatePost("user123")
	assert.Equal(t, "user123", post.UserId)
	require.Len(t, post.Items, 2)
	assert.Equal(t, "a.jpg", post.Items[0].Content)
	assert.Equal(t, "kept", post.Items[1].Content)

	// composition is not reset
	assert.Len(t, vm.Get().Items, 3)
}

func TestPostCreationViewModel_Reset(t *testing.T) {
	vm := viewmodels.NewPostCreationViewModel(newMock())
	defer vm.Close()

	vm.AddScreenshot("a.jpg")
	vm.AddComment("b")
	vm.AddScreenshot("c.jpg")
	vm.Reset()

	state := vm.Get()
	assert.Empty(t, state.Items)
	assert.Equal(t, model.PostItemTypeScreenshot, state.CurrentItemType)
	assert.False(t, state.IsCreatingPost)
}

func TestPostCreationViewModel_Submit(t *testing.T) {
	svc := newFakeService()
	vm := viewmodels.NewPostCreationViewModel(svc)
	defer vm.Close()

	assert.Nil(t, vm.Submit("user123"), "nothing to submit")

	vm.AddScreenshot("a.jpg")
	vm.AddComment("caption")
	task := vm.Submit("user123")
	require.NotNil(t, task)
	assert.True(t, vm.Get().IsCreatingPost)
	task.Wait()

	state := vm.Get()
	assert.False(t, state.IsCreatingPost)
	require.NotNil(t, state.LastCreated)
	assert.Equal(t, "user123", state.LastCreated.UserId)
	assert.Len(t, state.LastCreated.Items, 2)
	assert.Len(t, state.Items, 2, "submit does not reset")
	assert.Equal(t, int32(1), svc.created.Load())
}

func TestPostCreationViewModel_SubmitFailure(t *testing.T) {
	svc := newMock()
	svc.FailWith(services.ErrOperationFailed)
	vm := viewmodels.NewPostCreationViewModel(svc)
	defer vm.Close()

	vm.AddScreenshot("a.jpg")
	vm.Submit("user123").Wait()

	state := vm.Get()
	assert.False(t, state.IsCreatingPost)
	assert.Nil(t, state.LastCreated)
	assert.Equal(t, "operation failed", state.ErrorMessage)
}

func TestPostCreationViewModel_SubmitWhileCreatingIsRefused(t *testing.T) {
	svc := newFakeService().gated(false)
	vm := viewmodels.NewPostCreationViewModel(svc)
	defer vm.Close()

	vm.AddScreenshot("a.jpg")
	first := vm.Submit("user123")
	require.NotNil(t, first)
	assert.Nil(t, vm.Submit("user123"))

	svc.release()
	first.Wait()
	assert.Equal(t, int32(1), svc.created.Load())
	assert.NotNil(t, vm.Get().LastCreated)
}

func TestPostCreationViewModel_ResetDropsRunningSubmit(t *testing.T) {
	svc := newFakeService().gated(false)
	vm := viewmodels.NewPostCreationViewModel(svc)
	defer vm.Close()

	vm.AddScreenshot("a.jpg")
	task := vm.Submit("user123")
	vm.Reset()
	task.Wait()

	state := vm.Get()
	assert.False(t, state.IsCreatingPost)
	assert.Nil(t, state.LastCreated)
	assert.Empty(t, state.ErrorMessage)
	assert.Empty(t, state.Items)
}

package services

import (
	"context"
	"errors"

	"github.com/navbryce/daily-sns/model"
)

// ErrOperationFailed is the generic data-access failure.
var ErrOperationFailed = errors.New("operation failed")

// DataService is the boundary between view models and the backend.
// Implementations must honor ctx cancellation.
type DataService interface {
	FetchAlbums(ctx context.Context) ([]*model.Album, error)
	FetchRandomFollowingPosts(ctx context.Context, userId string) ([]*model.Post, error)
	FetchRandomGlobalPosts(ctx context.Context) ([]*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post) (*model.Post, error)
	FetchUser(ctx context.Context, id string) (*model.User, error)
}

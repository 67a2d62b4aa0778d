package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/services"
	"go.uber.org/zap"
)

const DefaultAlbumRefreshInterval = time.Minute * 20

type albumCache struct {
	albums    []*model.Album
	fetchedAt time.Time
}

// AlbumController serves the album directory from a cache that is refreshed
// in the background. A failed refresh keeps the previous cache.
type AlbumController struct {
	dataService services.DataService
	logger      *zap.Logger

	cacheLock sync.RWMutex
	cache     *albumCache

	cancel context.CancelFunc
	done   chan struct{}
}

// NewAlbumController loads the cache once and starts refreshing it every
// interval until ctx is cancelled or Stop is called.
func NewAlbumController(ctx context.Context, dataService services.DataService, interval time.Duration, logger *zap.Logger) (*AlbumController, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultAlbumRefreshInterval
	}
	controller := &AlbumController{
		dataService: dataService,
		logger:      logger,
		done:        make(chan struct{}),
	}
	if err := controller.Refresh(ctx); err != nil {
		return nil, err
	}

	ctx, controller.cancel = context.WithCancel(ctx)
	go controller.refreshLoop(ctx, interval)
	return controller, nil
}

func (ac *AlbumController) refreshLoop(ctx context.Context, interval time.Duration) {
	defer close(ac.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ac.attemptToRefresh(ctx)
		}
	}
}

// GetAlbums returns a copy of the cached albums.
func (ac *AlbumController) GetAlbums() []*model.Album {
	ac.cacheLock.RLock()
	defer ac.cacheLock.RUnlock()
	albums := make([]*model.Album, len(ac.cache.albums))
	for i, album := range ac.cache.albums {
		albums[i] = album.Clone()
	}
	return albums
}

func (ac *AlbumController) FetchedAt() time.Time {
	ac.cacheLock.RLock()
	defer ac.cacheLock.RUnlock()
	return ac.cache.fetchedAt
}

func (ac *AlbumController) Refresh(ctx context.Context) error {
	albums, err := ac.dataService.FetchAlbums(ctx)
	if err != nil {
		return err
	}
	newCache := &albumCache{
		albums:    albums,
		fetchedAt: time.Now(),
	}

	ac.cacheLock.Lock()
	defer ac.cacheLock.Unlock()
	if ac.cache == nil || newCache.fetchedAt.After(ac.cache.fetchedAt) {
		ac.cache = newCache
	}
	return nil
}

func (ac *AlbumController) attemptToRefresh(ctx context.Context) {
	if err := ac.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		ac.logger.Warn("an error occurred while refreshing the album cache", zap.Error(err))
		return
	}
	ac.logger.Debug("album cache refreshed", zap.Int("albums", len(ac.GetAlbums())))
}

// Stop ends background refreshing and waits for the refresh loop to exit.
func (ac *AlbumController) Stop() {
	ac.cancel()
	<-ac.done
}

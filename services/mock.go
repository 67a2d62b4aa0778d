package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/navbryce/daily-sns/db"
	"github.com/navbryce/daily-sns/model"
	"go.uber.org/zap"
)

const (
	DefaultMockDelay = 500 * time.Millisecond
	// FallbackFollowingPosts is how many fixture posts a requester without a
	// following list receives.
	FallbackFollowingPosts = 5
)

// MockDataService serves fixture data after a simulated network delay.
type MockDataService struct {
	db     db.Database
	delay  time.Duration
	logger *zap.Logger

	randLock sync.Mutex
	rand     *rand.Rand

	failLock sync.RWMutex
	failErr  error
}

type MockOption func(*MockDataService)

func WithDelay(delay time.Duration) MockOption {
	return func(m *MockDataService) {
		m.delay = delay
	}
}

func WithRand(r *rand.Rand) MockOption {
	return func(m *MockDataService) {
		m.rand = r
	}
}

func WithDatabase(database db.Database) MockOption {
	return func(m *MockDataService) {
		m.db = database
	}
}

func WithLogger(logger *zap.Logger) MockOption {
	return func(m *MockDataService) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewMockDataService(opts ...MockOption) *MockDataService {
	m := &MockDataService{
		db:     db.NewFixtures(),
		delay:  DefaultMockDelay,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m
}

var _ DataService = (*MockDataService)(nil)

// FailWith makes every later call return err after the delay. A nil err
// restores normal behavior. Intended for tests.
func (m *MockDataService) FailWith(err error) {
	m.failLock.Lock()
	defer m.failLock.Unlock()
	m.failErr = err
}

func (m *MockDataService) FetchAlbums(ctx context.Context) ([]*model.Album, error) {
	if err := m.simulateNetwork(ctx, "FetchAlbums"); err != nil {
		return nil, err
	}
	return m.db.Albums(), nil
}

// FetchRandomFollowingPosts returns shuffled posts by the users userId
// follows. Requesters that are unknown or follow nobody get the first
// FallbackFollowingPosts fixture posts instead.
func (m *MockDataService) FetchRandomFollowingPosts(ctx context.Context, userId string) ([]*model.Post, error) {
	if err := m.simulateNetwork(ctx, "FetchRandomFollowingPosts"); err != nil {
		return nil, err
	}
	posts := m.db.Posts()
	requester, ok := m.db.GetUser(userId)
	if !ok || len(requester.FollowingIds) == 0 {
		if len(posts) > FallbackFollowingPosts {
			posts = posts[:FallbackFollowingPosts]
		}
		return posts, nil
	}

	following := make([]*model.Post, 0, len(posts))
	for _, post := range posts {
		if requester.Follows(post.UserId) {
			following = append(following, post)
		}
	}
	m.shuffle(following)
	return following, nil
}

func (m *MockDataService) FetchRandomGlobalPosts(ctx context.Context) ([]*model.Post, error) {
	if err := m.simulateNetwork(ctx, "FetchRandomGlobalPosts"); err != nil {
		return nil, err
	}
	posts := m.db.Posts()
	m.shuffle(posts)
	return posts, nil
}

// CreatePost echoes post; nothing is stored.
func (m *MockDataService) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	if err := m.simulateNetwork(ctx, "CreatePost"); err != nil {
		return nil, err
	}
	return post, nil
}

// FetchUser never fails on a missing id; it returns the unknown user.
func (m *MockDataService) FetchUser(ctx context.Context, id string) (*model.User, error) {
	if err := m.simulateNetwork(ctx, "FetchUser"); err != nil {
		return nil, err
	}
	if user, ok := m.db.GetUser(id); ok {
		return user, nil
	}
	return m.db.UnknownUser(), nil
}

func (m *MockDataService) simulateNetwork(ctx context.Context, op string) error {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			m.logger.Debug("mock call cancelled", zap.String("op", op), zap.Error(ctx.Err()))
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	m.failLock.RLock()
	defer m.failLock.RUnlock()
	if m.failErr != nil {
		m.logger.Debug("mock call failing by request", zap.String("op", op), zap.Error(m.failErr))
		return m.failErr
	}
	return nil
}

func (m *MockDataService) shuffle(posts []*model.Post) {
	m.randLock.Lock()
	defer m.randLock.Unlock()
	m.rand.Shuffle(len(posts), func(i, j int) {
		posts[i], posts[j] = posts[j], posts[i]
	})
}

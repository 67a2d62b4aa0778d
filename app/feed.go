package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/services"
)

type FeedType string

const (
	FeedTypeFollowing FeedType = "following"
	FeedTypeGlobal    FeedType = "global"
)

var ErrUnknownFeedType = errors.New("unknown feed type")

func ParseFeedType(raw string) (FeedType, error) {
	switch feedType := FeedType(strings.ToLower(strings.TrimSpace(raw))); feedType {
	case FeedTypeFollowing, FeedTypeGlobal:
		return feedType, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFeedType, raw)
	}
}

func (ft FeedType) MarshalText() ([]byte, error) {
	if _, err := ParseFeedType(string(ft)); err != nil {
		return nil, err
	}
	return []byte(ft), nil
}

func (ft *FeedType) UnmarshalText(text []byte) error {
	parsed, err := ParseFeedType(string(text))
	if err != nil {
		return err
	}
	*ft = parsed
	return nil
}

// FetchFeed loads the posts for feedType on behalf of userId.
func FetchFeed(ctx context.Context, svc services.DataService, userId string, feedType FeedType) ([]*model.Post, error) {
	switch feedType {
	case FeedTypeFollowing:
		return svc.FetchRandomFollowingPosts(ctx, userId)
	case FeedTypeGlobal:
		return svc.FetchRandomGlobalPosts(ctx)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFeedType, string(feedType))
	}
}

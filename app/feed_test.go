package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navbryce/daily-sns/services"
)

func TestParseFeedType(t *testing.T) {
	tests := []struct {
		raw     string
		want    FeedType
		wantErr bool
	}{
		{"following", FeedTypeFollowing, false},
		{"GLOBAL", FeedTypeGlobal, false},
		{" global ", FeedTypeGlobal, false},
		{"popular", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFeedType(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFeedType, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestFeedType_JSON(t *testing.T) {
	var req struct {
		Feed FeedType `json:"feed"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"feed":"global"}`), &req))
	assert.Equal(t, FeedTypeGlobal, req.Feed)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"feed":"mostPopular"}`), &req), ErrUnknownFeedType)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"feed":"global"}`, string(data))

	req.Feed = "bogus"
	_, err = json.Marshal(req)
	assert.Error(t, err)
}

func TestFetchFeed(t *testing.T) {
	svc := services.NewMockDataService(services.WithDelay(0))
	ctx := context.Background()

	global, err := FetchFeed(ctx, svc, "1", FeedTypeGlobal)
	require.NoError(t, err)
	assert.Len(t, global, 9)

	following, err := FetchFeed(ctx, svc, "1", FeedTypeFollowing)
	require.NoError(t, err)
	assert.Len(t, following, 6)
	for _, post := range following {
		assert.NotEqual(t, "1", post.UserId)
	}

	_, err = FetchFeed(ctx, svc, "1", FeedType("trending"))
	assert.ErrorIs(t, err, ErrUnknownFeedType)
}

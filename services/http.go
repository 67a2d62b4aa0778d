package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/types"
)

// HTTPDataService talks to the JSON API served by the routes package.
type HTTPDataService struct {
	Base string
	HTTP *http.Client
}

func NewHTTPDataService(base string) *HTTPDataService {
	return &HTTPDataService{
		Base: strings.TrimRight(base, "/"),
		HTTP: http.DefaultClient,
	}
}

var _ DataService = (*HTTPDataService)(nil)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %s: %s", e.Method, e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

func (c *HTTPDataService) FetchAlbums(ctx context.Context) ([]*model.Album, error) {
	var albums []*model.Album
	if err := c.do(ctx, http.MethodGet, "/albums", nil, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

func (c *HTTPDataService) FetchRandomFollowingPosts(ctx context.Context, userId string) ([]*model.Post, error) {
	var res types.FollowingPostsResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userId)+"/following-posts", nil, &res); err != nil {
		return nil, err
	}
	return res.Posts, nil
}

func (c *HTTPDataService) FetchRandomGlobalPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	if err := c.do(ctx, http.MethodGet, "/posts/global", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPDataService) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	var created model.Post
	if err := c.do(ctx, http.MethodPost, "/posts", types.CreatePostRequestFrom(post), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPDataService) FetchUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPDataService) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}
	fullURL := c.Base + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env types.RawEnvelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:     method,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    env.Message,
		}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode %s %s: %w", method, fullURL, decodeErr)
	}
	if !env.Success {
		return fmt.Errorf("%s %s: %w: %s", method, fullURL, ErrOperationFailed, env.Message)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

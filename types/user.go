package types

import "github.com/navbryce/daily-sns/model"

// FollowingPostsResponse is returned by GET /users/:id/following-posts.
type FollowingPostsResponse struct {
	UserId string        `json:"userId"`
	Posts  []*model.Post `json:"posts"`
}

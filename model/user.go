package model

import (
	"time"

	"github.com/google/uuid"
)

// User holds the profile data the feed client needs to render an author.
type User struct {
	Id              string    `json:"id"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"displayName"`
	ProfileImageURL *string   `json:"profileImageURL,omitempty"`
	FollowingIds    []string  `json:"followingIds"`
	FollowerIds     []string  `json:"followerIds"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewUser returns a user with a fresh id and no relationships.
func NewUser(username, displayName string) *User {
	return &User{
		Id:           uuid.NewString(),
		Username:     username,
		DisplayName:  displayName,
		FollowingIds: []string{},
		FollowerIds:  []string{},
		CreatedAt:    time.Now(),
	}
}

func (u *User) Follows(id string) bool {
	for _, following := range u.FollowingIds {
		if following == id {
			return true
		}
	}
	return false
}

// Album is a user's collection of posts. The user's name and image are
// denormalized so an album list renders without fetching users.
type Album struct {
	Id                  string    `json:"id"`
	UserId              string    `json:"userId"`
	UserName            string    `json:"userName"`
	UserProfileImageURL *string   `json:"userProfileImageURL,omitempty"`
	Posts               []*Post   `json:"posts"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func NewAlbum(owner *User, posts []*Post) *Album {
	if posts == nil {
		posts = []*Post{}
	}
	now := time.Now()
	return &Album{
		Id:                  uuid.NewString(),
		UserId:              owner.Id,
		UserName:            owner.DisplayName,
		UserProfileImageURL: owner.ProfileImageURL,
		Posts:               posts,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// Clone deep copies the album and its posts.
func (a *Album) Clone() *Album {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Posts = ClonePosts(a.Posts)
	return &clone
}

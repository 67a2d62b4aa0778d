// Package db provides the in-memory fixture data set standing in for a
// real backend. Every call builds fresh records, so callers may mutate
// what they get back.
package db

import (
	"fmt"

	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/util"
)

const (
	PostsPerUser           = 3
	UnknownUsername        = "unknown"
	UnknownUserDisplayName = "Unknown User"
)

// Database is the read side of the fixture backend.
type Database interface {
	Users() []*model.User
	Posts() []*model.Post
	Albums() []*model.Album
	GetUser(id string) (*model.User, bool)
	UnknownUser() *model.User
}

type fixtureUser struct {
	id          string
	username    string
	displayName string
	following   []string
}

var fixtureUsers = []fixtureUser{
	{id: "1", username: "user1", displayName: "Alice", following: []string{"2", "3"}},
	{id: "2", username: "user2", displayName: "Bob", following: []string{"1"}},
	{id: "3", username: "user3", displayName: "Charlie"},
}

type Fixtures struct{}

func NewFixtures() *Fixtures {
	return &Fixtures{}
}

var _ Database = (*Fixtures)(nil)

func (f *Fixtures) Users() []*model.User {
	users := make([]*model.User, len(fixtureUsers))
	for i, fu := range fixtureUsers {
		user := model.NewUser(fu.username, fu.displayName)
		user.Id = fu.id
		avatar := util.Avatar(fu.username)
		user.ProfileImageURL = &avatar
		user.FollowingIds = append(user.FollowingIds, fu.following...)
		users[i] = user
	}
	for _, user := range users {
		for _, other := range users {
			if other.Follows(user.Id) {
				user.FollowerIds = append(user.FollowerIds, other.Id)
			}
		}
	}
	return users
}

// Posts returns PostsPerUser posts for each user, grouped by user in
// fixture order.
func (f *Fixtures) Posts() []*model.Post {
	return postsFor(f.Users())
}

func postsFor(users []*model.User) []*model.Post {
	posts := make([]*model.Post, 0, len(users)*PostsPerUser)
	for _, user := range users {
		for i := 0; i < PostsPerUser; i++ {
			posts = append(posts, model.NewPost(user.Id, []*model.PostItem{
				model.NewPostItem(model.PostItemTypeScreenshot, fmt.Sprintf("screenshot_%d.jpg", i)),
				model.NewPostItem(model.PostItemTypeComment, fmt.Sprintf("This is a comment %d", i)),
			}))
		}
	}
	return posts
}

func (f *Fixtures) Albums() []*model.Album {
	users := f.Users()
	posts := postsFor(users)
	albums := make([]*model.Album, len(users))
	for i, user := range users {
		userPosts := []*model.Post{}
		for _, post := range posts {
			if post.UserId == user.Id {
				userPosts = append(userPosts, post)
			}
		}
		albums[i] = model.NewAlbum(user, userPosts)
	}
	return albums
}

func (f *Fixtures) GetUser(id string) (*model.User, bool) {
	for _, user := range f.Users() {
		if user.Id == id {
			return user, true
		}
	}
	return nil, false
}

func (f *Fixtures) UnknownUser() *model.User {
	return model.NewUser(UnknownUsername, UnknownUserDisplayName)
}

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PostItemType string

const (
	PostItemTypeScreenshot PostItemType = "screenshot"
	PostItemTypeComment    PostItemType = "comment"
)

func (t PostItemType) Valid() bool {
	return t == PostItemTypeScreenshot || t == PostItemTypeComment
}

func (t *PostItemType) UnmarshalText(text []byte) error {
	itemType := PostItemType(text)
	if !itemType.Valid() {
		return fmt.Errorf("unknown post item type %q", string(text))
	}
	*t = itemType
	return nil
}

// PostItem is a single screenshot or comment inside a post. Content is an
// image URL for screenshots and free text for comments.
type PostItem struct {
	Id        string       `json:"id"`
	Type      PostItemType `json:"type"`
	Content   string       `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
	IsDeleted bool         `json:"isDeleted"`
}

func NewPostItem(itemType PostItemType, content string) *PostItem {
	return &PostItem{
		Id:        uuid.NewString(),
		Type:      itemType,
		Content:   content,
		Timestamp: time.Now(),
	}
}

type Post struct {
	Id        string      `json:"id"`
	UserId    string      `json:"userId"`
	Items     []*PostItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func NewPost(userId string, items []*PostItem) *Post {
	if items == nil {
		items = []*PostItem{}
	}
	now := time.Now()
	return &Post{
		Id:        uuid.NewString(),
		UserId:    userId,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ActiveItems returns the items that are not soft deleted, in order.
// The returned slice never shares its backing array with p.Items.
func (p *Post) ActiveItems() []*PostItem {
	return ActiveItems(p.Items)
}

func (p *Post) HasScreenshot() bool {
	return HasScreenshot(p.Items)
}

// Clone deep copies the post, including every item.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Items = CloneItems(p.Items)
	return &clone
}

func ActiveItems(items []*PostItem) []*PostItem {
	active := make([]*PostItem, 0, len(items))
	for _, item := range items {
		if !item.IsDeleted {
			active = append(active, item)
		}
	}
	return active
}

// HasScreenshot reports whether a screenshot that is not soft deleted
// exists among items.
func HasScreenshot(items []*PostItem) bool {
	for _, item := range items {
		if !item.IsDeleted && item.Type == PostItemTypeScreenshot {
			return true
		}
	}
	return false
}

func CloneItems(items []*PostItem) []*PostItem {
	if items == nil {
		return nil
	}
	clones := make([]*PostItem, len(items))
	for i, item := range items {
		itemCopy := *item
		clones[i] = &itemCopy
	}
	return clones
}

func ClonePosts(posts []*Post) []*Post {
	if posts == nil {
		return nil
	}
	clones := make([]*Post, len(posts))
	for i, post := range posts {
		clones[i] = post.Clone()
	}
	return clones
}

package types

import (
	"time"

	"github.com/navbryce/daily-sns/model"
)

type CreatePostItem struct {
	Id        string             `json:"id"`
	Type      model.PostItemType `json:"type" binding:"required"`
	Content   string             `json:"content"`
	Timestamp time.Time          `json:"timestamp"`
	IsDeleted bool               `json:"isDeleted"`
}

// CreatePostRequest carries a fully formed post. The mock backend echoes
// it, so ids and timestamps are supplied by the client.
type CreatePostRequest struct {
	Id        string            `json:"id"`
	UserId    string            `json:"userId" binding:"required"`
	Items     []*CreatePostItem `json:"items"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func CreatePostRequestFrom(post *model.Post) *CreatePostRequest {
	items := make([]*CreatePostItem, len(post.Items))
	for i, item := range post.Items {
		items[i] = &CreatePostItem{
			Id:        item.Id,
			Type:      item.Type,
			Content:   item.Content,
			Timestamp: item.Timestamp,
			IsDeleted: item.IsDeleted,
		}
	}
	return &CreatePostRequest{
		Id:        post.Id,
		UserId:    post.UserId,
		Items:     items,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// ToPost fills in missing ids and timestamps.
func (req *CreatePostRequest) ToPost() *model.Post {
	post := model.NewPost(req.UserId, make([]*model.PostItem, 0, len(req.Items)))
	if req.Id != "" {
		post.Id = req.Id
	}
	if !req.CreatedAt.IsZero() {
		post.CreatedAt = req.CreatedAt
	}
	if !req.UpdatedAt.IsZero() {
		post.UpdatedAt = req.UpdatedAt
	}
	for _, reqItem := range req.Items {
		item := model.NewPostItem(reqItem.Type, reqItem.Content)
		if reqItem.Id != "" {
			item.Id = reqItem.Id
		}
		if !reqItem.Timestamp.IsZero() {
			item.Timestamp = reqItem.Timestamp
		}
		item.IsDeleted = reqItem.IsDeleted
		post.Items = append(post.Items, item)
	}
	return post
}

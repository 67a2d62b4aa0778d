package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navbryce/daily-sns/model"
	"github.com/navbryce/daily-sns/services"
	"github.com/navbryce/daily-sns/types"
	"github.com/navbryce/daily-sns/util"
)

type postRoutes struct {
	dataService services.DataService
}

func AddPostRoutes(group *gin.RouterGroup, dataService services.DataService) {
	routes := postRoutes{dataService: dataService}
	posts := group.Group("/posts")
	posts.GET("/global", util.HandlerWrapper(routes.getGlobalPosts, &util.HandlerOpts{}))
	posts.POST("", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
}

func (pr *postRoutes) getGlobalPosts(c *gin.Context) (interface{}, *util.HTTPError) {
	posts, err := pr.dataService.FetchRandomGlobalPosts(c.Request.Context())
	if err != nil {
		return nil, util.BuildServiceHTTPErr(err)
	}
	return posts, nil
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	for i, item := range req.Items {
		if item == nil || !item.Type.Valid() {
			return nil, &util.HTTPError{
				Status:  http.StatusBadRequest,
				Message: fmt.Sprintf("item %d has an unknown type", i),
			}
		}
		if item.Type == model.PostItemTypeComment {
			item.Content = util.XSSSanitize(item.Content)
		}
	}

	created, err := pr.dataService.CreatePost(c.Request.Context(), req.ToPost())
	if err != nil {
		return nil, util.BuildServiceHTTPErr(err)
	}
	return created, nil
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/daily-sns/services"
	"github.com/navbryce/daily-sns/types"
	"github.com/navbryce/daily-sns/util"
)

type userRoutes struct {
	dataService services.DataService
}

func AddUserRoutes(group *gin.RouterGroup, dataService services.DataService) {
	routes := userRoutes{dataService: dataService}
	users := group.Group("/users")
	users.GET("/:id", util.HandlerWrapper(routes.getUser, &util.HandlerOpts{}))
	users.GET("/:id/following-posts", util.HandlerWrapper(routes.getFollowingPosts, &util.HandlerOpts{}))
}

// getUser falls back to the unknown user rather than 404ing.
func (ur *userRoutes) getUser(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := parseId(c)
	if httpErr != nil {
		return nil, httpErr
	}
	user, err := ur.dataService.FetchUser(c.Request.Context(), id)
	if err != nil {
		return nil, util.BuildServiceHTTPErr(err)
	}
	return user, nil
}

func (ur *userRoutes) getFollowingPosts(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := parseId(c)
	if httpErr != nil {
		return nil, httpErr
	}
	posts, err := ur.dataService.FetchRandomFollowingPosts(c.Request.Context(), id)
	if err != nil {
		return nil, util.BuildServiceHTTPErr(err)
	}
	return &types.FollowingPostsResponse{
		UserId: id,
		Posts:  posts,
	}, nil
}

func parseId(c *gin.Context) (string, *util.HTTPError) {
	id := c.Param("id")
	if util.IsBlank(id) {
		return "", &util.MalformedIdHTTPErr
	}
	return id, nil
}

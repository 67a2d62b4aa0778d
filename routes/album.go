package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/daily-sns/controllers"
	"github.com/navbryce/daily-sns/util"
)

type albumRoutes struct {
	controller *controllers.AlbumController
}

func AddAlbumRoutes(group *gin.RouterGroup, controller *controllers.AlbumController) {
	routes := albumRoutes{controller: controller}
	albums := group.Group("/albums")
	albums.GET("", util.HandlerWrapper(routes.getAlbums, &util.HandlerOpts{}))
}

func (ar *albumRoutes) getAlbums(c *gin.Context) (interface{}, *util.HTTPError) {
	return ar.controller.GetAlbums(), nil
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/daily-sns/controllers"
	"github.com/navbryce/daily-sns/middleware"
	"github.com/navbryce/daily-sns/services"
	"go.uber.org/zap"
)

// NewRouter builds the engine serving the data service API. Extra
// middleware (CORS, for instance) runs after logging and recovery.
func NewRouter(dataService services.DataService, albumController *controllers.AlbumController, logger *zap.Logger, extra ...gin.HandlerFunc) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())
	r.Use(extra...)

	AddHealthCheckRoutes(&r.RouterGroup)
	AddAlbumRoutes(&r.RouterGroup, albumController)
	AddPostRoutes(&r.RouterGroup, dataService)
	AddUserRoutes(&r.RouterGroup, dataService)
	return r
}

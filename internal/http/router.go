// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sunuguide/internal/http/handlers"
	"sunuguide/internal/http/middleware"
	"sunuguide/internal/modules/routesearch"
)

func NewRouter(engine *routesearch.Engine) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(), cors.Default())

	routeHandler := handlers.NewRouteHandler(engine)
	r.POST("/api/routes/search", routeHandler.Search)

	stationHandler := handlers.NewStationHandler(engine)
	r.GET("/api/stations", stationHandler.List)
	r.GET("/api/model", stationHandler.ModelInfo)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

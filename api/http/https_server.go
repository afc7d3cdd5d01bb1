package http

import (
	"RoastMe/internal/config"
	roastHandler "RoastMe/internal/modules/roast/interface/http"
	statusHandler "RoastMe/internal/modules/status/interface/http"
	"RoastMe/pkg/ssl"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewEngine 组装中间件与 /api 路由
func NewEngine(conf *config.Config, roastH *roastHandler.RoastHandler, statusH *statusHandler.StatusHandler) *gin.Engine {
	ge := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	ge.Use(cors.New(corsConfig))
	ge.Use(ssl.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port, conf.MainConfig.SSLRedirect))

	api := ge.Group("/api")
	api.GET("/", roastH.Root)
	api.POST("/roast", roastH.CreateRoast)
	api.GET("/roast/:roast_id", roastH.GetRoast)
	api.GET("/roasts/stats", roastH.GetStats)
	api.POST("/status", statusH.CreateStatusCheck)
	api.GET("/status", statusH.ListStatusChecks)

	return ge
}

package ioc

import (
	"net/http"

	"github.com/ecodeclub/roadmap/internal/item"
	"github.com/ecodeclub/roadmap/internal/pkg/middleware"
	"github.com/ecodeclub/roadmap/internal/widget"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

// initPublicServer 对外的挂件接口。
// 挂件脚本跑在任意第三方站点上，CORS 这层全放行，
// 域名白名单由 widget 模块自己的 Origin 校验负责
func initPublicServer(widgetModule *widget.Module,
	itemModule *item.Module) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		AllowHeaders: []string{"Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return true
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	widgetModule.Hdl.PublicRoutes(res.Engine)
	itemModule.Hdl.PublicRoutes(res.Engine)
	return res
}

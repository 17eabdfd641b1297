// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/roadmap/internal/item"
	"github.com/ecodeclub/roadmap/internal/pkg/middleware"
	"github.com/ecodeclub/roadmap/internal/policy"
	"github.com/ecodeclub/roadmap/internal/settings"
	"github.com/ecodeclub/roadmap/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(sp session.Provider,
	settingsModule *settings.Module,
	itemModule *item.Module,
	userModule *user.Module) AdminServer {
	session.SetDefaultProvider(sp)
	domain := econf.GetString("cors.adminDomain")
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许管理后台自己的域名过来的
			return domain != "" && strings.Contains(origin, domain)
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	// 角色门槛：员工和管理员能进来，普通用户直接挡掉。
	// 各个接口上更细的权限在 handler 里面再判
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(policy.ActionViewAny).Build())
	settingsModule.Hdl.PrivateRoutes(res.Engine)
	itemModule.Hdl.PrivateRoutes(res.Engine)
	userModule.Hdl.PrivateRoutes(res.Engine)
	return res
}

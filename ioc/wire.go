//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/roadmap/internal/item"
	"github.com/ecodeclub/roadmap/internal/settings"
	"github.com/ecodeclub/roadmap/internal/user"
	"github.com/ecodeclub/roadmap/internal/widget"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		user.InitModule,
		settings.InitModule,
		item.InitModule,
		widget.InitModule,
		initPublicServer,
		InitAdminServer)
	return new(App), nil
}

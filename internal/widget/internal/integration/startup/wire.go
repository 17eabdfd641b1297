//go:build wireinject

package startup

import (
	"github.com/ecodeclub/roadmap/internal/item"
	"github.com/ecodeclub/roadmap/internal/settings"
	testioc "github.com/ecodeclub/roadmap/internal/test/ioc"
	"github.com/ecodeclub/roadmap/internal/user"
	"github.com/ecodeclub/roadmap/internal/widget"
	"github.com/google/wire"
)

// Modules 挂件的链路横跨四个模块，测试里都要摸得到
type Modules struct {
	Widget   *widget.Module
	Settings *settings.Module
	Item     *item.Module
	User     *user.Module
}

func InitModules() (*Modules, error) {
	wire.Build(
		testioc.BaseSet,
		user.InitModule,
		settings.InitModule,
		item.InitModule,
		widget.InitModule,
		wire.Struct(new(Modules), "*"),
	)
	return new(Modules), nil
}

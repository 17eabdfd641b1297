//go:build wireinject

package startup

import (
	"github.com/ecodeclub/roadmap/internal/item"
	testioc "github.com/ecodeclub/roadmap/internal/test/ioc"
	"github.com/ecodeclub/roadmap/internal/user"
	"github.com/google/wire"
)

func InitModule() (*item.Module, error) {
	wire.Build(
		testioc.BaseSet,
		user.InitModule,
		item.InitModule,
	)
	return new(item.Module), nil
}

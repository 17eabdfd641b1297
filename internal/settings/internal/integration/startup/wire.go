//go:build wireinject

package startup

import (
	"github.com/ecodeclub/roadmap/internal/settings"
	testioc "github.com/ecodeclub/roadmap/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*settings.Module, error) {
	wire.Build(
		testioc.BaseSet,
		settings.InitModule,
	)
	return new(settings.Module), nil
}

//go:build wireinject

package startup

import (
	testioc "github.com/ecodeclub/roadmap/internal/test/ioc"
	"github.com/ecodeclub/roadmap/internal/user"
	"github.com/google/wire"
)

func InitModule() (*user.Module, error) {
	wire.Build(
		testioc.BaseSet,
		user.InitModule,
	)
	return new(user.Module), nil
}

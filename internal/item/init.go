package item

import (
	"github.com/ecodeclub/roadmap/internal/item/internal/repository"
	"github.com/ecodeclub/roadmap/internal/item/internal/repository/dao"
	"github.com/ecodeclub/roadmap/internal/item/internal/service"
	"github.com/ecodeclub/roadmap/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func initDAO(db *egorm.Component) dao.ItemDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMItemDAO(db)
}

func initService(repo repository.ItemRepository, userModule *user.Module) service.Service {
	type Config struct {
		BaseURL string `yaml:"baseURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("site", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewService(repo, userModule.Svc, cfg.BaseURL)
}

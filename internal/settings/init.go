package settings

import (
	"github.com/ecodeclub/roadmap/internal/settings/internal/repository/dao"
	"github.com/ego-component/egorm"
)

func initDAO(db *egorm.Component) dao.SettingsDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMSettingsDAO(db)
}

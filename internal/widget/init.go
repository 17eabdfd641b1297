package widget

import (
	"github.com/ecodeclub/roadmap/internal/item"
	"github.com/ecodeclub/roadmap/internal/settings"
	"github.com/ecodeclub/roadmap/internal/widget/internal/service"
)

func initService(settingsModule *settings.Module, itemModule *item.Module) service.Service {
	return service.NewService(settingsModule.Svc, itemModule.Svc)
}

package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ecodeclub/roadmap/internal/settings/internal/domain"
	"github.com/ecodeclub/roadmap/internal/settings/internal/repository/cache"
	"github.com/ecodeclub/roadmap/internal/settings/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./settings.go -package=repomocks -destination=mocks/settings.mock.go SettingsRepository
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

// CachedSettingsRepository 读多写少，读走缓存，写穿透之后失效
type CachedSettingsRepository struct {
	dao    dao.SettingsDAO
	cache  cache.SettingsCache
	logger *elog.Component
}

func NewCachedSettingsRepository(d dao.SettingsDAO,
	c cache.SettingsCache) SettingsRepository {
	return &CachedSettingsRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (sr *CachedSettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	s, err := sr.cache.Get(ctx)
	if err == nil {
		return s, nil
	}
	entity, err := sr.dao.Get(ctx)
	if errors.Is(err, dao.ErrDataNotFound) {
		// 还没保存过配置，按默认值算，挂件默认关着
		return domain.Default(), nil
	}
	if err != nil {
		return domain.Settings{}, err
	}
	s = sr.entityToDomain(entity)
	if err = sr.cache.Set(ctx, s); err != nil {
		sr.logger.Error("回填挂件配置缓存失败", elog.FieldErr(err))
	}
	return s, nil
}

func (sr *CachedSettingsRepository) Save(ctx context.Context, s domain.Settings) error {
	err := sr.dao.Save(ctx, sr.domainToEntity(s))
	if err != nil {
		return err
	}
	return sr.cache.Delete(ctx)
}

func (sr *CachedSettingsRepository) entityToDomain(e dao.WidgetSettings) domain.Settings {
	var domains []string
	if e.AllowedDomains != "" {
		if err := json.Unmarshal([]byte(e.AllowedDomains), &domains); err != nil {
			sr.logger.Error("挂件域名白名单数据损坏", elog.FieldErr(err))
		}
	}
	return domain.Settings{
		Enabled:        e.Enabled,
		Position:       domain.Position(e.Position),
		PrimaryColor:   e.PrimaryColor,
		ButtonText:     e.ButtonText,
		AllowedDomains: domains,
	}
}

func (sr *CachedSettingsRepository) domainToEntity(s domain.Settings) dao.WidgetSettings {
	var domains string
	if len(s.AllowedDomains) > 0 {
		data, _ := json.Marshal(s.AllowedDomains)
		domains = string(data)
	}
	return dao.WidgetSettings{
		Enabled:        s.Enabled,
		Position:       string(s.Position),
		PrimaryColor:   s.PrimaryColor,
		ButtonText:     s.ButtonText,
		AllowedDomains: domains,
	}
}

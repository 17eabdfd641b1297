package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/roadmap/internal/settings/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./settings.go -package=cachemocks -destination=mocks/settings.mock.go SettingsCache
type SettingsCache interface {
	Get(ctx context.Context) (domain.Settings, error)
	Set(ctx context.Context, s domain.Settings) error
	Delete(ctx context.Context) error
}

type SettingsECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewSettingsECache(c ecache.Cache) SettingsCache {
	return &SettingsECache{
		cache: &ecache.NamespaceCache{
			Namespace: "settings:",
			C:         c,
		},
		// 挂件的每次 config 读都会打到这里，过期可以放久一点，写侧负责失效
		expiration: time.Hour,
	}
}

func (cache *SettingsECache) Get(ctx context.Context) (domain.Settings, error) {
	var s domain.Settings
	err := cache.cache.Get(ctx, cache.key()).JSONScan(&s)
	return s, err
}

func (cache *SettingsECache) Set(ctx context.Context, s domain.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(), data, cache.expiration)
}

func (cache *SettingsECache) Delete(ctx context.Context) error {
	_, err := cache.cache.Delete(ctx, cache.key())
	return err
}

func (cache *SettingsECache) key() string {
	return "roadmap:settings:widget"
}

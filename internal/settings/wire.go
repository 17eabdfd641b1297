// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package settings

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/roadmap/internal/settings/internal/repository"
	"github.com/ecodeclub/roadmap/internal/settings/internal/repository/cache"
	"github.com/ecodeclub/roadmap/internal/settings/internal/service"
	"github.com/ecodeclub/roadmap/internal/settings/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	cache.NewSettingsECache,
	repository.NewCachedSettingsRepository,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

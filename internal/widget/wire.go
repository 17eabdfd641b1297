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

package widget

import (
	"github.com/ecodeclub/roadmap/internal/item"
	"github.com/ecodeclub/roadmap/internal/settings"
	"github.com/ecodeclub/roadmap/internal/widget/internal/web"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initService,
	web.NewHandler,
)

func InitModule(settingsModule *settings.Module, itemModule *item.Module) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

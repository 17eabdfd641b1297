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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/roadmap/internal/settings/internal/domain"
	"github.com/ecodeclub/roadmap/internal/settings/internal/repository"
)

var ErrInvalidPosition = errors.New("非法的挂件位置")

//go:generate mockgen -source=./settings.go -package=settingsmocks -destination=../../mocks/settings.mock.go Service
type Service interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

type service struct {
	repo repository.SettingsRepository
}

func NewService(repo repository.SettingsRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Get(ctx context.Context) (domain.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Save(ctx context.Context, settings domain.Settings) error {
	if !settings.Position.Valid() {
		return ErrInvalidPosition
	}
	settings.AllowedDomains = normalizeDomains(settings.AllowedDomains)
	return s.repo.Save(ctx, settings)
}

// normalizeDomains 去掉空白项，域名统一小写
func normalizeDomains(domains []string) []string {
	domains = slice.Map(domains, func(idx int, src string) string {
		return strings.ToLower(strings.TrimSpace(src))
	})
	return slice.FilterDelete(domains, func(idx int, src string) bool {
		return src == ""
	})
}

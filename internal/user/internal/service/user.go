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

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"

	"github.com/ecodeclub/roadmap/internal/policy"
	"github.com/ecodeclub/roadmap/internal/user/internal/domain"
	"github.com/ecodeclub/roadmap/internal/user/internal/repository"
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// FindOrCreateByEmail 查找或者初始化。
	// 挂件投稿带邮箱的时候走这里解析身份
	FindOrCreateByEmail(ctx context.Context, email, name string) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) FindOrCreateByEmail(ctx context.Context,
	email, name string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := svc.repo.FindByEmail(ctx, email)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	if name == "" {
		// 没给名字就先用邮箱前缀顶着
		name, _, _ = strings.Cut(email, "@")
	}
	u = domain.User{
		Name:  name,
		Email: email,
		SN:    shortuuid.New(),
		Role:  policy.RoleMember,
	}
	id, err := svc.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrUserDuplicate) {
		// 并发投稿撞了唯一索引，重新查一遍
		return svc.repo.FindByEmail(ctx, email)
	}
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	return u, nil
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	return svc.repo.List(ctx, offset, limit)
}

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
	"testing"

	"github.com/ecodeclub/roadmap/internal/policy"
	"github.com/ecodeclub/roadmap/internal/user/internal/domain"
	"github.com/ecodeclub/roadmap/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/roadmap/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_FindOrCreateByEmail(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		email   string
		uname   string
		mock    func(ctrl *gomock.Controller) repository.UserRepository
		want    domain.User
		wantErr error
	}{
		{
			name:  "已有用户直接返回",
			email: "a@b.com",
			uname: "A",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").
					Return(domain.User{
						Id:    7,
						Name:  "老用户",
						Email: "a@b.com",
						Role:  policy.RoleMember,
					}, nil)
				return repo
			},
			want: domain.User{
				Id:    7,
				Name:  "老用户",
				Email: "a@b.com",
				Role:  policy.RoleMember,
			},
		},
		{
			name: "邮箱统一小写再查",
			// 挂件传过来的邮箱大小写不可控
			email: " A@B.COM ",
			uname: "A",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").
					Return(domain.User{Id: 8, Email: "a@b.com"}, nil)
				return repo
			},
			want: domain.User{Id: 8, Email: "a@b.com"},
		},
		{
			name:  "新用户创建成普通角色",
			email: "new@b.com",
			uname: "新人",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "new@b.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
						assert.Equal(t, "新人", u.Name)
						assert.Equal(t, "new@b.com", u.Email)
						assert.Equal(t, policy.RoleMember, u.Role)
						assert.NotEmpty(t, u.SN)
						return 9, nil
					})
				return repo
			},
			want: domain.User{Id: 9},
		},
		{
			name:  "没给名字用邮箱前缀",
			email: "prefix@b.com",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "prefix@b.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
						assert.Equal(t, "prefix", u.Name)
						return 10, nil
					})
				return repo
			},
			want: domain.User{Id: 10},
		},
		{
			name:  "并发撞了唯一索引就重查",
			email: "race@b.com",
			uname: "R",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "race@b.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrUserDuplicate)
				repo.EXPECT().FindByEmail(gomock.Any(), "race@b.com").
					Return(domain.User{Id: 11, Email: "race@b.com"}, nil)
				return repo
			},
			want: domain.User{Id: 11, Email: "race@b.com"},
		},
		{
			name:  "创建失败",
			email: "err@b.com",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "err@b.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			u, err := svc.FindOrCreateByEmail(context.Background(), tc.email, tc.uname)
			if tc.wantErr != nil {
				require.Equal(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			if tc.want.Id != 0 && tc.want.Email == "" {
				// 创建路径只校验 id，SN 是随机生成的
				assert.Equal(t, tc.want.Id, u.Id)
				return
			}
			assert.Equal(t, tc.want, u)
		})
	}
}

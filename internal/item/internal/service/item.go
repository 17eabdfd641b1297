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
	"strings"

	"github.com/lithammer/shortuuid/v4"

	"github.com/ecodeclub/roadmap/internal/item/internal/domain"
	"github.com/ecodeclub/roadmap/internal/item/internal/repository"
	"github.com/ecodeclub/roadmap/internal/user"
)

var (
	ErrItemNotFound = repository.ErrItemNotFound
	ErrVoteNotFound = repository.ErrVoteNotFound
)

type VoteResult struct {
	Voted bool
	Votes int
}

//go:generate mockgen -source=./item.go -package=itemmocks -destination=../../mocks/item.mock.go Service
type Service interface {
	// Submit 挂件投稿。带邮箱的先解析身份，条目、自动票、流水一次事务落库
	Submit(ctx context.Context, sub domain.Submission) (domain.Item, error)
	// Vote 挂件里对已有条目投票，再点一次是取消
	Vote(ctx context.Context, sn, email, name string) (VoteResult, error)
	// ItemURL 条目详情页地址，挂件投稿成功之后回给宿主页面
	ItemURL(item domain.Item) string

	// 管理端
	List(ctx context.Context, offset, limit int) ([]domain.Item, error)
	PendingCount(ctx context.Context) (int64, error)
	Info(ctx context.Context, id int64) (domain.Item, error)
	FindBySN(ctx context.Context, sn string) (domain.Item, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ItemStatus, causerUid int64) error
	Votes(ctx context.Context, itemId int64, offset, limit int) ([]domain.Vote, error)
	DeleteVote(ctx context.Context, voteId int64) error
	Activities(ctx context.Context, itemId int64, offset, limit int) ([]domain.Activity, error)
}

type itemService struct {
	repo    repository.ItemRepository
	userSvc user.UserService
	// baseURL 详情页的站点前缀，空的话返回相对路径
	baseURL string
}

func NewService(repo repository.ItemRepository,
	userSvc user.UserService, baseURL string) Service {
	return &itemService{
		repo:    repo,
		userSvc: userSvc,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *itemService) Submit(ctx context.Context, sub domain.Submission) (domain.Item, error) {
	var uid int64
	if !sub.Anonymous() {
		u, err := s.userSvc.FindOrCreateByEmail(ctx, sub.Email, sub.Name)
		if err != nil {
			return domain.Item{}, err
		}
		uid = u.Id
	}
	return s.repo.CreateSubmission(ctx, domain.Item{
		SN:      shortuuid.New(),
		Title:   sub.Title,
		Content: sub.Content,
		Uid:     uid,
		Status:  domain.StatusPending,
	})
}

func (s *itemService) Vote(ctx context.Context, sn, email, name string) (VoteResult, error) {
	u, err := s.userSvc.FindOrCreateByEmail(ctx, email, name)
	if err != nil {
		return VoteResult{}, err
	}
	item, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return VoteResult{}, err
	}
	voted, err := s.repo.VoteToggle(ctx, item.ID, u.Id)
	if err != nil {
		return VoteResult{}, err
	}
	// 重新读一遍拿最新票数
	item, err = s.repo.Info(ctx, item.ID)
	if err != nil {
		return VoteResult{}, err
	}
	return VoteResult{
		Voted: voted,
		Votes: item.VoteCnt,
	}, nil
}

func (s *itemService) ItemURL(item domain.Item) string {
	return s.baseURL + "/items/" + item.SN
}

func (s *itemService) List(ctx context.Context, offset, limit int) ([]domain.Item, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *itemService) PendingCount(ctx context.Context) (int64, error) {
	return s.repo.PendingCount(ctx)
}

func (s *itemService) Info(ctx context.Context, id int64) (domain.Item, error) {
	return s.repo.Info(ctx, id)
}

func (s *itemService) FindBySN(ctx context.Context, sn string) (domain.Item, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *itemService) UpdateStatus(ctx context.Context, id int64,
	status domain.ItemStatus, causerUid int64) error {
	return s.repo.UpdateStatus(ctx, id, status, causerUid)
}

func (s *itemService) Votes(ctx context.Context, itemId int64, offset, limit int) ([]domain.Vote, error) {
	return s.repo.Votes(ctx, itemId, offset, limit)
}

func (s *itemService) DeleteVote(ctx context.Context, voteId int64) error {
	return s.repo.DeleteVote(ctx, voteId)
}

func (s *itemService) Activities(ctx context.Context, itemId int64, offset, limit int) ([]domain.Activity, error) {
	return s.repo.Activities(ctx, itemId, offset, limit)
}

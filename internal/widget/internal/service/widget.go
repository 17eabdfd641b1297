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

	"github.com/ecodeclub/roadmap/internal/item"
	"github.com/ecodeclub/roadmap/internal/settings"
)

var (
	// ErrWidgetDisabled 挂件整体关闭
	ErrWidgetDisabled = errors.New("挂件未启用")
	// ErrOriginDenied 来源域名不在白名单里
	ErrOriginDenied = errors.New("来源域名不被允许")

	ErrItemNotFound = item.ErrItemNotFound
)

// ValidationError 按字段收集校验错误，一次把所有问题都报出去
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	return "字段校验失败: " + strings.Join(fields, ",")
}

// Config 挂件渲染自己需要的配置。
// 关闭或者来源不对的时候只保证 Enabled=false，别的字段一律不往外带
type Config struct {
	Enabled      bool
	Position     string
	PrimaryColor string
	ButtonText   string
}

type SubmitResult struct {
	ItemID  int64
	ItemURL string
}

//go:generate mockgen -source=./widget.go -package=widgetmocks -destination=../../mocks/widget.mock.go Service
type Service interface {
	// Config 挂件加载配置。对宿主站点永远成功，拿不到就是 Enabled=false
	Config(ctx context.Context, origin string) (Config, error)
	// Submit 挂件投稿。检查顺序固定：域名白名单 -> 开关 -> 字段校验 -> 落库
	Submit(ctx context.Context, origin string, sub item.Submission) (SubmitResult, error)
	// Vote 挂件里给已有条目投票，必须带邮箱
	Vote(ctx context.Context, origin, sn, email, name string) (item.VoteResult, error)
}

type widgetService struct {
	settingsSvc settings.Service
	itemSvc     item.Service
}

func NewService(settingsSvc settings.Service, itemSvc item.Service) Service {
	return &widgetService{
		settingsSvc: settingsSvc,
		itemSvc:     itemSvc,
	}
}

func (s *widgetService) Config(ctx context.Context, origin string) (Config, error) {
	st, err := s.settingsSvc.Get(ctx)
	if err != nil {
		return Config{}, err
	}
	if !st.Enabled || !originAllowed(origin, st.AllowedDomains) {
		// 不区分关闭和来源被拒，避免向陌生站点泄露配置
		return Config{}, nil
	}
	return Config{
		Enabled:      true,
		Position:     string(st.Position),
		PrimaryColor: st.PrimaryColor,
		ButtonText:   st.ButtonText,
	}, nil
}

func (s *widgetService) Submit(ctx context.Context, origin string, sub item.Submission) (SubmitResult, error) {
	if err := s.guard(ctx, origin); err != nil {
		return SubmitResult{}, err
	}
	if err := validateSubmission(sub); err != nil {
		return SubmitResult{}, err
	}
	created, err := s.itemSvc.Submit(ctx, sub)
	if err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{
		ItemID:  created.ID,
		ItemURL: s.itemSvc.ItemURL(created),
	}, nil
}

func (s *widgetService) Vote(ctx context.Context, origin, sn, email, name string) (item.VoteResult, error) {
	if err := s.guard(ctx, origin); err != nil {
		return item.VoteResult{}, err
	}
	if strings.TrimSpace(email) == "" {
		return item.VoteResult{}, &ValidationError{
			Fields: map[string][]string{
				"email": {"email is required"},
			},
		}
	}
	return s.itemSvc.Vote(ctx, sn, email, name)
}

// guard 白名单在前，开关在后
func (s *widgetService) guard(ctx context.Context, origin string) error {
	st, err := s.settingsSvc.Get(ctx)
	if err != nil {
		return err
	}
	if !originAllowed(origin, st.AllowedDomains) {
		return ErrOriginDenied
	}
	if !st.Enabled {
		return ErrWidgetDisabled
	}
	return nil
}

func validateSubmission(sub item.Submission) error {
	fields := make(map[string][]string)
	if strings.TrimSpace(sub.Title) == "" {
		fields["title"] = append(fields["title"], "title is required")
	}
	if strings.TrimSpace(sub.Content) == "" {
		fields["content"] = append(fields["content"], "content is required")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

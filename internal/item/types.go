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

package item

import (
	"github.com/ecodeclub/roadmap/internal/item/internal/domain"
	"github.com/ecodeclub/roadmap/internal/item/internal/service"
	"github.com/ecodeclub/roadmap/internal/item/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler

// Service 给 widget 模块投稿/投票用
type Service = service.Service

type Item = domain.Item
type Submission = domain.Submission
type Vote = domain.Vote
type Activity = domain.Activity
type VoteResult = service.VoteResult

var (
	ErrItemNotFound = service.ErrItemNotFound
	ErrVoteNotFound = service.ErrVoteNotFound
)

type Module struct {
	Hdl *Handler
	Svc Service
}

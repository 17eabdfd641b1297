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

// Package policy 管理后台的角色鉴权。
// 就是一张写死的 角色 x 操作 表，不搞动态分发。
package policy

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleMember   Role = "member"
)

type Action uint8

const (
	ActionViewAny Action = iota
	ActionView
	ActionCreate
	ActionUpdate
	ActionDelete
	ActionRestore
	ActionForceDelete
)

// matrix 只有 ViewAny 对员工开放，其余都是管理员专属
var matrix = map[Action][]Role{
	ActionViewAny:     {RoleAdmin, RoleEmployee},
	ActionView:        {RoleAdmin},
	ActionCreate:      {RoleAdmin},
	ActionUpdate:      {RoleAdmin},
	ActionDelete:      {RoleAdmin},
	ActionRestore:     {RoleAdmin},
	ActionForceDelete: {RoleAdmin},
}

func Allow(r Role, a Action) bool {
	roles, ok := matrix[a]
	if !ok {
		return false
	}
	for _, role := range roles {
		if role == r {
			return true
		}
	}
	return false
}

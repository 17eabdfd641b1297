package domain

import "github.com/ecodeclub/roadmap/internal/policy"

type User struct {
	Id    int64
	Name  string
	Email string
	// SN 对外暴露的唯一标识，不用自增 ID
	SN   string
	Role policy.Role
}

func (u User) IsAdmin() bool {
	return u.Role == policy.RoleAdmin
}

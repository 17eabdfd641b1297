package web

import (
	"github.com/ecodeclub/roadmap/internal/user/internal/domain"
)

type User struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	SN    string `json:"sn,omitempty"`
	Role  string `json:"role,omitempty"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type UserList struct {
	Users []User `json:"users,omitempty"`
}

type UserID struct {
	UID int64 `json:"uid"`
}

func newUser(u domain.User) User {
	return User{
		ID:    u.Id,
		Name:  u.Name,
		Email: u.Email,
		SN:    u.SN,
		Role:  string(u.Role),
	}
}

package web

import "github.com/ecodeclub/roadmap/internal/widget/internal/service"

type ConfigResp struct {
	Enabled      bool   `json:"enabled"`
	Position     string `json:"position,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
	ButtonText   string `json:"button_text,omitempty"`
}

func newConfigResp(cfg service.Config) ConfigResp {
	return ConfigResp{
		Enabled:      cfg.Enabled,
		Position:     cfg.Position,
		PrimaryColor: cfg.PrimaryColor,
		ButtonText:   cfg.ButtonText,
	}
}

type SubmitReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type SubmitResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ItemID  int64  `json:"item_id"`
	ItemURL string `json:"item_url"`
}

type VoteReq struct {
	ItemSN string `json:"item_sn"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type VoteResp struct {
	Success bool  `json:"success"`
	Voted   bool  `json:"voted"`
	Votes   int64 `json:"votes"`
}

type ValidationResp struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type ErrorResp struct {
	Message string `json:"message"`
}

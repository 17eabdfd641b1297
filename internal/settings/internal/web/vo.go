package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/roadmap/internal/settings/internal/domain"
)

type Settings struct {
	Enabled        bool     `json:"enabled"`
	Position       string   `json:"position,omitempty"`
	PrimaryColor   string   `json:"primary_color,omitempty"`
	ButtonText     string   `json:"button_text,omitempty"`
	AllowedDomains []string `json:"allowed_domains,omitempty"`
}

type SaveReq struct {
	Settings Settings `json:"settings"`
}

// SchemaField 表单项，visible 是按当前配置算好的
type SchemaField struct {
	Key     string   `json:"key"`
	Type    string   `json:"type"`
	Label   string   `json:"label"`
	Help    string   `json:"help,omitempty"`
	Options []string `json:"options,omitempty"`
	Visible bool     `json:"visible"`
}

type Schema struct {
	Fields []SchemaField `json:"fields"`
}

func (s Settings) toDomain() domain.Settings {
	return domain.Settings{
		Enabled:        s.Enabled,
		Position:       domain.Position(s.Position),
		PrimaryColor:   s.PrimaryColor,
		ButtonText:     s.ButtonText,
		AllowedDomains: s.AllowedDomains,
	}
}

func newSettings(s domain.Settings) Settings {
	return Settings{
		Enabled:        s.Enabled,
		Position:       string(s.Position),
		PrimaryColor:   s.PrimaryColor,
		ButtonText:     s.ButtonText,
		AllowedDomains: s.AllowedDomains,
	}
}

func newSchema(s domain.Settings) Schema {
	return Schema{
		Fields: slice.Map(domain.FormSchema(), func(idx int, f domain.Field) SchemaField {
			return SchemaField{
				Key:     f.Key,
				Type:    string(f.Type),
				Label:   f.Label,
				Help:    f.Help,
				Options: f.Options,
				Visible: f.VisibleWhen(s),
			}
		}),
	}
}

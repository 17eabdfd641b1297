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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

// settingsID 全站只有一行配置
const settingsID = 1

//go:generate mockgen -source=./settings.go -package=daomocks -destination=mocks/settings.mock.go SettingsDAO
type SettingsDAO interface {
	Get(ctx context.Context) (WidgetSettings, error)
	Save(ctx context.Context, s WidgetSettings) error
}

type GORMSettingsDAO struct {
	db *egorm.Component
}

func NewGORMSettingsDAO(db *egorm.Component) SettingsDAO {
	return &GORMSettingsDAO{
		db: db,
	}
}

func (d *GORMSettingsDAO) Get(ctx context.Context) (WidgetSettings, error) {
	var s WidgetSettings
	err := d.db.WithContext(ctx).Where("id = ?", settingsID).First(&s).Error
	return s, err
}

func (d *GORMSettingsDAO) Save(ctx context.Context, s WidgetSettings) error {
	now := time.Now().UnixMilli()
	s.Id = settingsID
	s.Ctime = now
	s.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"enabled":         s.Enabled,
			"position":        s.Position,
			"primary_color":   s.PrimaryColor,
			"button_text":     s.ButtonText,
			"allowed_domains": s.AllowedDomains,
			"utime":           now,
		}),
	}).Create(&s).Error
}

type WidgetSettings struct {
	Id           int64  `gorm:"primaryKey"`
	Enabled      bool   `gorm:"not null;default:false"`
	Position     string `gorm:"type:varchar(32);not null;default:'bottom-right'"`
	PrimaryColor string `gorm:"column:primary_color;type:varchar(32);not null;default:'#6366f1'"`
	ButtonText   string `gorm:"type:varchar(128);not null;default:'Feedback'"`
	// AllowedDomains JSON 数组文本
	AllowedDomains string `gorm:"type:text"`
	Ctime          int64
	Utime          int64
}

func (WidgetSettings) TableName() string {
	return "widget_settings"
}

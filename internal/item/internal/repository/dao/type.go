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

import "database/sql"

// Item 反馈条目
type Item struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	SN      string `gorm:"type:varchar(256);unique"`
	Title   string `gorm:"type:varchar(512);not null"`
	Content string `gorm:"type:text;not null"`
	// Uid 投稿人，匿名投稿为 NULL
	Uid     sql.NullInt64 `gorm:"index"`
	Status  int32         `gorm:"type:tinyint(3);default:0;index:idx_status;comment:状态 0-待处理 1-已排期 2-进行中 3-已完成 4-拒绝;not null"`
	VoteCnt int           `gorm:"not null;default:0"`
	Ctime   int64
	Utime   int64
}

func (Item) TableName() string {
	return "items"
}

// Vote 投票明细表
// (uid, item_id) 上的唯一索引兜底：并发下同一个人对同一条目也只有一票
type Vote struct {
	Id     int64 `gorm:"primaryKey,autoIncrement"`
	Uid    int64 `gorm:"uniqueIndex:uid_item_id"`
	ItemId int64 `gorm:"uniqueIndex:uid_item_id"`
	Ctime  int64
	Utime  int64
}

func (Vote) TableName() string {
	return "votes"
}

// Activity 条目操作流水，只插入
type Activity struct {
	Id     int64 `gorm:"primaryKey,autoIncrement"`
	ItemId int64 `gorm:"index:idx_item_id"`
	// CauserUid 匿名来源记 0，配合 CauserType 区分
	CauserUid  int64  `gorm:"not null;default:0"`
	CauserType string `gorm:"type:varchar(16);not null;default:'user';comment:user 或 anonymous"`
	Action     string `gorm:"type:varchar(32);not null"`
	Detail     string `gorm:"type:text"`
	Ctime      int64
}

func (Activity) TableName() string {
	return "activities"
}

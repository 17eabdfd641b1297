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
	"errors"
	"time"

	"github.com/ecodeclub/roadmap/internal/item/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrDeleteVoteNotFound 删除不存在的投票
	ErrDeleteVoteNotFound = errors.New("投票记录不存在")
)

const (
	causerUser      = "user"
	causerAnonymous = "anonymous"

	actionCreated       = string(domain.ActivityCreated)
	actionVoted         = string(domain.ActivityVoted)
	actionStatusChanged = string(domain.ActivityStatusChanged)
)

//go:generate mockgen -source=./item.go -package=daomocks -destination=mocks/item.mock.go ItemDAO
type ItemDAO interface {
	// CreateSubmission 挂件投稿的事务核心：
	// 条目、投稿人自动带上的一票、归因的操作流水，要么全部落库要么全部回滚
	CreateSubmission(ctx context.Context, item Item) (Item, error)
	List(ctx context.Context, offset, limit int) ([]Item, error)
	PendingCount(ctx context.Context) (int64, error)
	Info(ctx context.Context, id int64) (Item, error)
	FindBySN(ctx context.Context, sn string) (Item, error)
	UpdateStatus(ctx context.Context, id int64, status int32, causerUid int64) error
	// VoteToggle 有票删票，没票投票，返回切换之后有没有票
	VoteToggle(ctx context.Context, itemId, uid int64) (bool, error)
	ListVotes(ctx context.Context, itemId int64, offset, limit int) ([]Vote, error)
	DeleteVote(ctx context.Context, voteId int64) error
	ListActivities(ctx context.Context, itemId int64, offset, limit int) ([]Activity, error)
}

type GORMItemDAO struct {
	db *egorm.Component
}

func NewGORMItemDAO(db *egorm.Component) ItemDAO {
	return &GORMItemDAO{
		db: db,
	}
}

func (g *GORMItemDAO) CreateSubmission(ctx context.Context, item Item) (Item, error) {
	now := time.Now().UnixMilli()
	item.Ctime = now
	item.Utime = now
	causerUid := int64(0)
	causerType := causerAnonymous
	if item.Uid.Valid {
		// 自动带上投稿人的一票
		item.VoteCnt = 1
		causerUid = item.Uid.Int64
		causerType = causerUser
	}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		if item.Uid.Valid {
			err := tx.Create(&Vote{
				Uid:    item.Uid.Int64,
				ItemId: item.Id,
				Ctime:  now,
				Utime:  now,
			}).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(&Activity{
			ItemId:     item.Id,
			CauserUid:  causerUid,
			CauserType: causerType,
			Action:     actionCreated,
			Ctime:      now,
		}).Error
	})
	return item, err
}

func (g *GORMItemDAO) List(ctx context.Context, offset, limit int) ([]Item, error) {
	var res []Item
	err := g.db.WithContext(ctx).
		Order("status asc,vote_cnt desc,id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMItemDAO) PendingCount(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Item{}).
		Where("status = ?", 0).Count(&count).Error
	return count, err
}

func (g *GORMItemDAO) Info(ctx context.Context, id int64) (Item, error) {
	var item Item
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return item, err
}

func (g *GORMItemDAO) FindBySN(ctx context.Context, sn string) (Item, error) {
	var item Item
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&item).Error
	return item, err
}

func (g *GORMItemDAO) UpdateStatus(ctx context.Context, id int64, status int32, causerUid int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Item{}).
			Where("id = ?", id).Updates(map[string]any{
			"status": status,
			"utime":  now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrDataNotFound
		}
		return tx.Create(&Activity{
			ItemId:     id,
			CauserUid:  causerUid,
			CauserType: causerUser,
			Action:     actionStatusChanged,
			Detail:     domain.ItemStatus(status).Name(),
			Ctime:      now,
		}).Error
	})
}

func (g *GORMItemDAO) VoteToggle(ctx context.Context, itemId, uid int64) (bool, error) {
	var voted bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("item_id = ? AND uid = ?", itemId, uid).
			First(&Vote{}).Error
		switch {
		case err == nil:
			return g.deleteVote(tx, itemId, uid)
		case errors.Is(err, gorm.ErrRecordNotFound):
			voted = true
			return g.insertVote(tx, itemId, uid)
		default:
			return err
		}
	})
	return voted, err
}

func (g *GORMItemDAO) insertVote(tx *gorm.DB, itemId, uid int64) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&Vote{
		Uid:    uid,
		ItemId: itemId,
		Ctime:  now,
		Utime:  now,
	}).Error
	if err != nil {
		return err
	}
	err = tx.Model(&Item{}).
		Where("id = ?", itemId).
		Updates(map[string]any{
			"vote_cnt": gorm.Expr("`vote_cnt` + 1"),
			"utime":    now,
		}).Error
	if err != nil {
		return err
	}
	return tx.Create(&Activity{
		ItemId:     itemId,
		CauserUid:  uid,
		CauserType: causerUser,
		Action:     actionVoted,
		Ctime:      now,
	}).Error
}

func (g *GORMItemDAO) deleteVote(tx *gorm.DB, itemId, uid int64) error {
	now := time.Now().UnixMilli()
	res := tx.Where("item_id = ? AND uid = ?", itemId, uid).Delete(&Vote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	return tx.Model(&Item{}).
		Where("id = ? AND vote_cnt > 0", itemId).
		Updates(map[string]any{
			"vote_cnt": gorm.Expr("`vote_cnt` - 1"),
			"utime":    now,
		}).Error
}

func (g *GORMItemDAO) ListVotes(ctx context.Context, itemId int64, offset, limit int) ([]Vote, error) {
	var votes []Vote
	err := g.db.WithContext(ctx).
		Where("item_id = ?", itemId).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&votes).Error
	return votes, err
}

func (g *GORMItemDAO) DeleteVote(ctx context.Context, voteId int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vote Vote
		err := tx.Where("id = ?", voteId).First(&vote).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeleteVoteNotFound
		}
		if err != nil {
			return err
		}
		res := tx.Delete(&Vote{}, vote.Id)
		if res.Error != nil {
			return res.Error
		}
		return tx.Model(&Item{}).
			Where("id = ? AND vote_cnt > 0", vote.ItemId).
			Updates(map[string]any{
				"vote_cnt": gorm.Expr("`vote_cnt` - 1"),
				"utime":    time.Now().UnixMilli(),
			}).Error
	})
}

func (g *GORMItemDAO) ListActivities(ctx context.Context, itemId int64, offset, limit int) ([]Activity, error) {
	var activities []Activity
	err := g.db.WithContext(ctx).
		Where("item_id = ?", itemId).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&activities).Error
	return activities, err
}

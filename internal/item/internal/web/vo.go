package web

import (
	"time"

	"github.com/ecodeclub/roadmap/internal/item/internal/domain"
)

type Item struct {
	ID      int64  `json:"id,omitempty"`
	SN      string `json:"sn,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	// UID 为 0 表示匿名投稿
	UID    int64  `json:"uid,omitempty"`
	Status int32  `json:"status"`
	Votes  int    `json:"votes"`
	Ctime  string `json:"ctime,omitempty"`
	Utime  string `json:"utime,omitempty"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ItemList struct {
	Items []Item `json:"items,omitempty"`
}

type ItemID struct {
	ID int64 `json:"id"`
}

type UpdateStatusReq struct {
	ID     int64 `json:"id"`
	Status int32 `json:"status"`
}

type VoteListReq struct {
	ItemID int64 `json:"item_id"`
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
}

type Vote struct {
	ID     int64  `json:"id"`
	ItemID int64  `json:"item_id"`
	UID    int64  `json:"uid"`
	Ctime  string `json:"ctime,omitempty"`
}

type VoteList struct {
	Votes []Vote `json:"votes,omitempty"`
}

type VoteID struct {
	ID int64 `json:"id"`
}

type ActivityListReq struct {
	ItemID int64 `json:"item_id"`
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
}

type Activity struct {
	ID        int64  `json:"id"`
	ItemID    int64  `json:"item_id"`
	CauserUID int64  `json:"causer_uid"`
	Anonymous bool   `json:"anonymous"`
	Action    string `json:"action"`
	Detail    string `json:"detail,omitempty"`
	Ctime     string `json:"ctime,omitempty"`
}

type ActivityList struct {
	Activities []Activity `json:"activities,omitempty"`
}

func newItem(item domain.Item) Item {
	return Item{
		ID:      item.ID,
		SN:      item.SN,
		Title:   item.Title,
		Content: item.Content,
		UID:     item.Uid,
		Status:  int32(item.Status),
		Votes:   item.VoteCnt,
		Ctime:   item.Ctime.Format(time.DateTime),
		Utime:   item.Utime.Format(time.DateTime),
	}
}

func newVote(v domain.Vote) Vote {
	return Vote{
		ID:     v.ID,
		ItemID: v.ItemID,
		UID:    v.Uid,
		Ctime:  v.Ctime.Format(time.DateTime),
	}
}

func newActivity(a domain.Activity) Activity {
	return Activity{
		ID:        a.ID,
		ItemID:    a.ItemID,
		CauserUID: a.CauserUid,
		Anonymous: a.Anonymous(),
		Action:    string(a.Action),
		Detail:    a.Detail,
		Ctime:     a.Ctime.Format(time.DateTime),
	}
}

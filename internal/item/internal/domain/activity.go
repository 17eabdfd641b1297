package domain

import "time"

type ActivityAction string

const (
	ActivityCreated       ActivityAction = "created"
	ActivityVoted         ActivityAction = "voted"
	ActivityStatusChanged ActivityAction = "status_changed"
)

// Activity 条目上的操作流水，只追加不修改
type Activity struct {
	ID     int64
	ItemID int64
	// CauserUid 操作人，0 表示匿名来源
	CauserUid int64
	Action    ActivityAction
	Detail    string
	Ctime     time.Time
}

func (a Activity) Anonymous() bool {
	return a.CauserUid == 0
}

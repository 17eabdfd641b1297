package domain

import "time"

type ItemStatus int32

const (
	// 待处理
	StatusPending ItemStatus = 0
	// 已排期
	StatusPlanned ItemStatus = 1
	// 进行中
	StatusInProgress ItemStatus = 2
	// 已完成
	StatusDone ItemStatus = 3
	// 拒绝
	StatusRejected ItemStatus = 4
)

// Name 状态的英文名，操作流水的 detail 里记这个
func (s ItemStatus) Name() string {
	switch s {
	case StatusPlanned:
		return "planned"
	case StatusInProgress:
		return "in_progress"
	case StatusDone:
		return "done"
	case StatusRejected:
		return "rejected"
	default:
		return "pending"
	}
}

type Item struct {
	ID int64
	// SN 对外的唯一标识，条目详情页用它
	SN      string
	Title   string
	Content string
	// Uid 投稿人，0 表示匿名投稿
	Uid     int64
	Status  ItemStatus
	VoteCnt int
	Ctime   time.Time
	Utime   time.Time
}

// Submission 挂件提交过来的原始投稿
type Submission struct {
	Title   string
	Content string
	Email   string
	Name    string
}

func (s Submission) Anonymous() bool {
	return s.Email == ""
}

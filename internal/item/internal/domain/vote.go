package domain

import "time"

// Vote 一个用户对一个条目只有一票
type Vote struct {
	ID     int64
	ItemID int64
	Uid    int64
	Ctime  time.Time
}

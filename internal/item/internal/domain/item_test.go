package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemStatusName(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		status ItemStatus
		want   string
	}{
		{StatusPending, "pending"},
		{StatusPlanned, "planned"},
		{StatusInProgress, "in_progress"},
		{StatusDone, "done"},
		{StatusRejected, "rejected"},
		// 不认识的值按待处理算
		{ItemStatus(99), "pending"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.status.Name())
	}
}

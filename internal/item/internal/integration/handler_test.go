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

//go:build e2e

package integration

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/roadmap/internal/item/internal/integration/startup"
	"github.com/ecodeclub/roadmap/internal/item/internal/repository/dao"
	"github.com/ecodeclub/roadmap/internal/item/internal/web"
	"github.com/ecodeclub/roadmap/internal/test"
	testioc "github.com/ecodeclub/roadmap/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2051)

type AdminHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ItemDAO
	// role 每个请求带进 session 的角色，默认管理员
	role string
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	s.role = "admin"
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": s.role},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMItemDAO(s.db)
}

func (s *AdminHandlerTestSuite) TearDownSuite() {
	for _, table := range []string{"items", "votes", "activities", "users"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.role = "admin"
	for _, table := range []string{"items", "votes", "activities", "users"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *AdminHandlerTestSuite) seedItem(id int64, title string, status int32, voteCnt int) {
	err := s.db.Create(&dao.Item{
		Id:      id,
		SN:      "sn-" + title,
		Title:   title,
		Content: "内容-" + title,
		Uid:     sql.NullInt64{Int64: uid, Valid: true},
		Status:  status,
		VoteCnt: voteCnt,
		Ctime:   1712160000000,
		Utime:   1712160000000,
	}).Error
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) TestList() {
	// 待处理在前，票多的在前
	s.seedItem(1, "已完成", 3, 10)
	s.seedItem(2, "待处理少票", 0, 1)
	s.seedItem(3, "待处理多票", 0, 5)
	req, err := http.NewRequest(http.MethodPost,
		"/items/list", iox.NewJSONReader(web.ListReq{Offset: 0, Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ItemList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	items := recorder.MustScan().Data.Items
	require.Len(s.T(), items, 3)
	assert.Equal(s.T(), []int64{3, 2, 1}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func (s *AdminHandlerTestSuite) TestPendingCount() {
	s.seedItem(1, "已完成", 3, 0)
	s.seedItem(2, "待处理", 0, 0)
	s.seedItem(3, "又一条待处理", 0, 0)
	req, err := http.NewRequest(http.MethodGet,
		"/items/pending-count", iox.NewJSONReader(nil))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), int64(2), recorder.MustScan().Data)
}

func (s *AdminHandlerTestSuite) TestInfo() {
	s.seedItem(4, "查详情", 1, 2)
	testCases := []struct {
		name     string
		req      web.ItemID
		wantCode int
	}{
		{
			name:     "存在",
			req:      web.ItemID{ID: 4},
			wantCode: 200,
		},
		{
			name:     "不存在",
			req:      web.ItemID{ID: 404},
			wantCode: 404,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/items/info", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Item]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == 200 {
				data := recorder.MustScan().Data
				assert.Equal(t, "查详情", data.Title)
				assert.Equal(t, int32(1), data.Status)
				assert.Equal(t, 2, data.Votes)
			}
		})
	}
}

func (s *AdminHandlerTestSuite) TestUpdateStatus() {
	s.seedItem(5, "改状态", 0, 0)
	req, err := http.NewRequest(http.MethodPost,
		"/items/update-status", iox.NewJSONReader(web.UpdateStatusReq{ID: 5, Status: 2}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	item, err := s.dao.Info(ctx, 5)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int32(2), item.Status)

	// 状态变更留了归因到管理员的流水
	activities, err := s.dao.ListActivities(ctx, 5, 0, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), activities, 1)
	assert.Equal(s.T(), uid, activities[0].CauserUid)
	assert.Equal(s.T(), "status_changed", activities[0].Action)
	assert.Equal(s.T(), "in_progress", activities[0].Detail)
}

func (s *AdminHandlerTestSuite) TestUpdateStatusNotFound() {
	req, err := http.NewRequest(http.MethodPost,
		"/items/update-status", iox.NewJSONReader(web.UpdateStatusReq{ID: 404, Status: 2}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 404, recorder.Code)
}

func (s *AdminHandlerTestSuite) TestVotes() {
	s.seedItem(6, "看投票", 0, 2)
	now := time.Now().UnixMilli()
	err := s.db.Create(&[]dao.Vote{
		{Id: 1, Uid: 100, ItemId: 6, Ctime: now, Utime: now},
		{Id: 2, Uid: 101, ItemId: 6, Ctime: now, Utime: now},
	}).Error
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/items/votes", iox.NewJSONReader(web.VoteListReq{ItemID: 6, Offset: 0, Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.VoteList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	votes := recorder.MustScan().Data.Votes
	require.Len(s.T(), votes, 2)
	assert.Equal(s.T(), int64(101), votes[0].UID)
	assert.Equal(s.T(), int64(100), votes[1].UID)
}

func (s *AdminHandlerTestSuite) TestDeleteVote() {
	s.seedItem(7, "删投票", 0, 1)
	now := time.Now().UnixMilli()
	err := s.db.Create(&dao.Vote{
		Id: 3, Uid: 100, ItemId: 7, Ctime: now, Utime: now,
	}).Error
	require.NoError(s.T(), err)

	testCases := []struct {
		name     string
		req      web.VoteID
		wantCode int
	}{
		{
			name:     "删除存在的投票",
			req:      web.VoteID{ID: 3},
			wantCode: 200,
		},
		{
			name:     "重复删除",
			req:      web.VoteID{ID: 3},
			wantCode: 404,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/items/vote/delete", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
		})
	}
	// 票数跟着回落
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	item, err := s.dao.Info(ctx, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0, item.VoteCnt)
}

func (s *AdminHandlerTestSuite) TestActivities() {
	s.seedItem(8, "看流水", 0, 0)
	err := s.db.Create(&[]dao.Activity{
		{Id: 1, ItemId: 8, CauserUid: 0, CauserType: "anonymous", Action: "created", Ctime: 1712160000000},
		{Id: 2, ItemId: 8, CauserUid: uid, CauserType: "user", Action: "status_changed", Detail: "planned", Ctime: 1712246400000},
	}).Error
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/items/activities", iox.NewJSONReader(web.ActivityListReq{ItemID: 8, Offset: 0, Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ActivityList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	activities := recorder.MustScan().Data.Activities
	require.Len(s.T(), activities, 2)
	assert.Equal(s.T(), "status_changed", activities[0].Action)
	assert.False(s.T(), activities[0].Anonymous)
	assert.Equal(s.T(), "created", activities[1].Action)
	assert.True(s.T(), activities[1].Anonymous)
}

func (s *AdminHandlerTestSuite) TestDetail() {
	s.seedItem(9, "详情页", 0, 0)
	testCases := []struct {
		name     string
		sn       string
		wantCode int
	}{
		{
			name:     "存在",
			sn:       "sn-详情页",
			wantCode: 200,
		},
		{
			name:     "不存在",
			sn:       "no-such-sn",
			wantCode: 404,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/items/"+tc.sn, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func (s *AdminHandlerTestSuite) TestPermission() {
	s.seedItem(10, "权限", 0, 0)
	testCases := []struct {
		name     string
		role     string
		path     string
		body     any
		wantCode int
	}{
		{
			name:     "员工能看列表",
			role:     "employee",
			path:     "/items/list",
			body:     web.ListReq{Limit: 10},
			wantCode: 200,
		},
		{
			name:     "员工改不了状态",
			role:     "employee",
			path:     "/items/update-status",
			body:     web.UpdateStatusReq{ID: 10, Status: 1},
			wantCode: 403,
		},
		{
			name:     "员工删不了投票",
			role:     "employee",
			path:     "/items/vote/delete",
			body:     web.VoteID{ID: 1},
			wantCode: 403,
		},
		{
			name:     "普通用户连列表都看不了",
			role:     "member",
			path:     "/items/list",
			body:     web.ListReq{Limit: 10},
			wantCode: 403,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.role = tc.role
			defer func() { s.role = "admin" }()
			req, err := http.NewRequest(http.MethodPost,
				tc.path, iox.NewJSONReader(tc.body))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

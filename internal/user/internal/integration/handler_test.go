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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/roadmap/internal/test"
	testioc "github.com/ecodeclub/roadmap/internal/test/ioc"
	"github.com/ecodeclub/roadmap/internal/user/internal/integration/startup"
	"github.com/ecodeclub/roadmap/internal/user/internal/repository/dao"
	"github.com/ecodeclub/roadmap/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	role   string
}

func (s *HandlerTestSuite) SetupSuite() {
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
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.role = "admin"
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) seedUsers() {
	err := s.db.Create(&[]dao.User{
		{Id: 1, Name: "甲", Email: "a@b.com", SN: "sn-1", Role: "member", Ctime: 123, Utime: 123},
		{Id: 2, Name: "乙", Email: "b@b.com", SN: "sn-2", Role: "employee", Ctime: 124, Utime: 124},
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestList() {
	s.seedUsers()
	testCases := []struct {
		name     string
		role     string
		wantCode int
		wantLen  int
	}{
		{
			name:     "管理员能看",
			role:     "admin",
			wantCode: 200,
			wantLen:  2,
		},
		{
			name:     "员工也能看",
			role:     "employee",
			wantCode: 200,
			wantLen:  2,
		},
		{
			name:     "普通用户不行",
			role:     "member",
			wantCode: 403,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.role = tc.role
			defer func() { s.role = "admin" }()
			req, err := http.NewRequest(http.MethodPost,
				"/users/list", iox.NewJSONReader(web.ListReq{Offset: 0, Limit: 10}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.UserList]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == 200 {
				assert.Len(t, recorder.MustScan().Data.Users, tc.wantLen)
			}
		})
	}
}

func (s *HandlerTestSuite) TestInfo() {
	s.seedUsers()
	testCases := []struct {
		name     string
		role     string
		req      web.UserID
		wantCode int
		want     web.User
	}{
		{
			name:     "管理员看详情",
			role:     "admin",
			req:      web.UserID{UID: 1},
			wantCode: 200,
			want: web.User{
				ID:    1,
				Name:  "甲",
				Email: "a@b.com",
				SN:    "sn-1",
				Role:  "member",
			},
		},
		{
			name:     "员工看不了详情",
			role:     "employee",
			req:      web.UserID{UID: 1},
			wantCode: 403,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.role = tc.role
			defer func() { s.role = "admin" }()
			req, err := http.NewRequest(http.MethodPost,
				"/users/info", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.User]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == 200 {
				assert.Equal(t, tc.want, recorder.MustScan().Data)
			}
		})
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

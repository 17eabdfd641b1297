package web

import (
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/roadmap/internal/policy"
	"github.com/ecodeclub/roadmap/internal/user/internal/domain"
	"github.com/ecodeclub/roadmap/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.UserService
	logger *elog.Component
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	// 列表对员工开放，详情是管理员专属
	users.POST("/list", ginx.S(h.permissionViewAny), ginx.B[ListReq](h.List))
	users.POST("/info", ginx.S(h.permissionView), ginx.B[UserID](h.Info))
	users.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	data, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UserList{
			Users: slice.Map(data, func(idx int, u domain.User) User {
				return newUser(u)
			}),
		},
	}, nil
}

func (h *Handler) Info(ctx *ginx.Context, req UserID) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, req.UID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newUser(u),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newUser(u),
	}, nil
}

func (h *Handler) permissionViewAny(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.permission(ctx, sess, policy.ActionViewAny)
}

func (h *Handler) permissionView(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.permission(ctx, sess, policy.ActionView)
}

func (h *Handler) permission(ctx *ginx.Context, sess session.Session, action policy.Action) (ginx.Result, error) {
	role := sess.Claims().Get("role").StringOrDefault("")
	if !policy.Allow(policy.Role(role), action) {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, fmt.Errorf("越权访问用户管理 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

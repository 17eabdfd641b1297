package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/roadmap/internal/policy"
	"github.com/ecodeclub/roadmap/internal/settings/internal/errs"
	"github.com/ecodeclub/roadmap/internal/settings/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	settings := server.Group("/settings/widget")
	settings.GET("", ginx.S(h.permissionView), ginx.W(h.Detail))
	settings.GET("/schema", ginx.S(h.permissionView), ginx.W(h.Schema))
	settings.POST("/save", ginx.S(h.permissionUpdate), ginx.B[SaveReq](h.Save))
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	s, err := h.svc.Get(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSettings(s),
	}, nil
}

// Schema 返回设置表单结构，可见性按当前配置算好
func (h *Handler) Schema(ctx *ginx.Context) (ginx.Result, error) {
	s, err := h.svc.Get(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSchema(s),
	}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	err := h.svc.Save(ctx, req.Settings.toDomain())
	if errors.Is(err, service.ErrInvalidPosition) {
		return ginx.Result{
			Code: errs.InvalidPosition.Code,
			Msg:  errs.InvalidPosition.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) permissionView(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.permission(ctx, sess, policy.ActionView)
}

func (h *Handler) permissionUpdate(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.permission(ctx, sess, policy.ActionUpdate)
}

func (h *Handler) permission(ctx *ginx.Context, sess session.Session, action policy.Action) (ginx.Result, error) {
	role := sess.Claims().Get("role").StringOrDefault("")
	if !policy.Allow(policy.Role(role), action) {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, fmt.Errorf("越权修改挂件配置 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

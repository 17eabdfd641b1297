package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/roadmap/internal/item/internal/domain"
	"github.com/ecodeclub/roadmap/internal/item/internal/errs"
	"github.com/ecodeclub/roadmap/internal/item/internal/service"
	"github.com/ecodeclub/roadmap/internal/policy"
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
	items := server.Group("/items")
	// 列表类操作员工可见，写操作管理员专属
	items.POST("/list", ginx.S(h.permissionViewAny), ginx.B[ListReq](h.List))
	items.GET("/pending-count", ginx.S(h.permissionViewAny), ginx.W(h.PendingCount))
	items.POST("/info", ginx.S(h.permissionView), ginx.B[ItemID](h.Info))
	items.POST("/update-status", ginx.S(h.permissionUpdate), ginx.BS[UpdateStatusReq](h.UpdateStatus))
	items.POST("/votes", ginx.S(h.permissionViewAny), ginx.B[VoteListReq](h.Votes))
	items.POST("/vote/delete", ginx.S(h.permissionDelete), ginx.B[VoteID](h.DeleteVote))
	items.POST("/activities", ginx.S(h.permissionViewAny), ginx.B[ActivityListReq](h.Activities))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 条目详情页，挂件投稿成功之后跳过来
	server.GET("/items/:sn", h.Detail)
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	data, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ItemList{
			Items: slice.Map(data, func(idx int, item domain.Item) Item {
				return newItem(item)
			}),
		},
	}, nil
}

func (h *Handler) PendingCount(ctx *ginx.Context) (ginx.Result, error) {
	count, err := h.svc.PendingCount(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: count,
	}, nil
}

func (h *Handler) Info(ctx *ginx.Context, req ItemID) (ginx.Result, error) {
	item, err := h.svc.Info(ctx, req.ID)
	if errors.Is(err, service.ErrItemNotFound) {
		ctx.AbortWithStatus(http.StatusNotFound)
		return ginx.Result{}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newItem(item),
	}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, req.ID,
		domain.ItemStatus(req.Status), sess.Claims().Uid)
	if errors.Is(err, service.ErrItemNotFound) {
		ctx.AbortWithStatus(http.StatusNotFound)
		return ginx.Result{}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Votes(ctx *ginx.Context, req VoteListReq) (ginx.Result, error) {
	data, err := h.svc.Votes(ctx, req.ItemID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: VoteList{
			Votes: slice.Map(data, func(idx int, v domain.Vote) Vote {
				return newVote(v)
			}),
		},
	}, nil
}

func (h *Handler) DeleteVote(ctx *ginx.Context, req VoteID) (ginx.Result, error) {
	err := h.svc.DeleteVote(ctx, req.ID)
	if errors.Is(err, service.ErrVoteNotFound) {
		ctx.AbortWithStatus(http.StatusNotFound)
		return ginx.Result{}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Activities(ctx *ginx.Context, req ActivityListReq) (ginx.Result, error) {
	data, err := h.svc.Activities(ctx, req.ItemID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ActivityList{
			Activities: slice.Map(data, func(idx int, a domain.Activity) Activity {
				return newActivity(a)
			}),
		},
	}, nil
}

// Detail 公开页面，不走管理端的 Result 包装
func (h *Handler) Detail(ctx *gin.Context) {
	item, err := h.svc.FindBySN(ctx.Request.Context(), ctx.Param("sn"))
	if errors.Is(err, service.ErrItemNotFound) {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("查询条目详情失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, newItem(item))
}

func (h *Handler) permissionViewAny(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.permission(ctx, sess, policy.ActionViewAny)
}

func (h *Handler) permissionView(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.permission(ctx, sess, policy.ActionView)
}

func (h *Handler) permissionUpdate(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.permission(ctx, sess, policy.ActionUpdate)
}

func (h *Handler) permissionDelete(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.permission(ctx, sess, policy.ActionDelete)
}

func (h *Handler) permission(ctx *ginx.Context, sess session.Session, action policy.Action) (ginx.Result, error) {
	role := sess.Claims().Get("role").StringOrDefault("")
	if !policy.Allow(policy.Role(role), action) {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, fmt.Errorf("越权访问条目管理 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

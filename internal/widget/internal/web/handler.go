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

package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/roadmap/internal/item"
	"github.com/ecodeclub/roadmap/internal/widget/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 挂件的对外接口。
// 这些接口由第三方站点里的脚本直接调用，返回格式是挂件脚本约定好的，
// 不走统一的 Result 包装
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

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/widget.js", h.Script)
	g := server.Group("/api/widget")
	g.GET("/config", h.Config)
	g.POST("/submit", h.Submit)
	g.POST("/vote", h.Vote)
}

// Config 任何来源都能拿到响应，拿不到配置就当成没开启，
// 不把内部错误暴露给宿主站点
func (h *Handler) Config(ctx *gin.Context) {
	cfg, err := h.svc.Config(ctx.Request.Context(), ctx.GetHeader("Origin"))
	if err != nil {
		h.logger.Error("读取挂件配置失败", elog.FieldErr(err))
		ctx.JSON(http.StatusOK, ConfigResp{Enabled: false})
		return
	}
	ctx.JSON(http.StatusOK, newConfigResp(cfg))
}

func (h *Handler) Submit(ctx *gin.Context) {
	var req SubmitReq
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResp{Message: "invalid request body"})
		return
	}
	res, err := h.svc.Submit(ctx.Request.Context(), ctx.GetHeader("Origin"), item.Submission{
		Title:   req.Title,
		Content: req.Content,
		Email:   req.Email,
		Name:    req.Name,
	})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, SubmitResp{
		Success: true,
		Message: "Thank you for your feedback!",
		ItemID:  res.ItemID,
		ItemURL: res.ItemURL,
	})
}

func (h *Handler) Vote(ctx *gin.Context) {
	var req VoteReq
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResp{Message: "invalid request body"})
		return
	}
	res, err := h.svc.Vote(ctx.Request.Context(), ctx.GetHeader("Origin"),
		req.ItemSN, req.Email, req.Name)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, VoteResp{
		Success: true,
		Voted:   res.Voted,
		Votes:   int64(res.Votes),
	})
}

func (h *Handler) fail(ctx *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		ctx.JSON(http.StatusUnprocessableEntity, ValidationResp{
			Message: "The given data was invalid.",
			Errors:  ve.Fields,
		})
	case errors.Is(err, service.ErrOriginDenied),
		errors.Is(err, service.ErrWidgetDisabled):
		ctx.JSON(http.StatusForbidden, ErrorResp{Message: "Forbidden"})
	case errors.Is(err, service.ErrItemNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResp{Message: "Not Found"})
	default:
		h.logger.Error("挂件请求处理失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Message: "Internal Server Error"})
	}
}

package web

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed widget.js
var widgetScript []byte

// Script 挂件脚本本体，宿主站点用一个 <script> 标签引入
func (h *Handler) Script(ctx *gin.Context) {
	ctx.Header("Cache-Control", "public, max-age=3600")
	ctx.Data(http.StatusOK, "application/javascript", widgetScript)
}

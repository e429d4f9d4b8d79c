package response

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON 成功返回，数据按原样输出
func JSON(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Fail 失败返回封装，错误体只带 message
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Message: message})
}

// Error 处理错误。业务错误按 ErrorMap 映射状态码；
// 未知错误按 500 处理，message 取 fallback，error 回显底层详情。
func Error(c *gin.Context, err error, fallback string) {
	for e, status := range service.ErrorMap {
		if errors.Is(err, e) {
			Fail(c, status, e.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "Request failed", "err", err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: fallback,
		Error:   err.Error(),
	})
}

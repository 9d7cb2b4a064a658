package httpt

import (
	"net/http"

	"orderlookup/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *WidgetHandler) handleBindError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid search request",
		logger.String("op", op),
		logger.Err(err),
		logger.String("remote_addr", c.ClientIP()),
		logger.String("content_type", c.ContentType()),
	)

	c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid search request"})
}

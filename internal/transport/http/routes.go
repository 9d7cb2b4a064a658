package httpt

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *WidgetHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	pages := h.router.Group("/", h.sessionMiddleware())
	{
		pages.GET("/", h.indexHandler)
		pages.POST("/search", h.searchHandler)
		pages.GET("/result", h.resultHandler)
	}
}

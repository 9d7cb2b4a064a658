package httpt

import (
	"html/template"
	"net/http"
	"time"

	"orderlookup/internal/widget"
	"orderlookup/pkg/logger"

	"github.com/gin-gonic/gin"
)

type pageData struct {
	Lang    string
	Title   string
	Find    string
	Input   string
	Content template.HTML
	Refresh bool
}

func (h *WidgetHandler) indexHandler(c *gin.Context) {
	sess := sessionFrom(c)
	view := regionResponse(sess)

	c.HTML(http.StatusOK, "index.html", pageData{
		Lang:  h.l.Language().String(),
		Title: h.l.T("Order lookup"),
		Find:  h.l.T("Find"),
		Input: sess.Input(),
		// Region content comes from the HTML renderer, which escapes every value.
		Content: template.HTML(view.HTML), //nolint:gosec
		Refresh: view.State == string(widget.KindLoading),
	})
}

func (h *WidgetHandler) searchHandler(c *gin.Context) {
	const op = "transport.searchHandler"

	sess := sessionFrom(c)

	var req searchRequest
	if err := c.ShouldBind(&req); err != nil {
		h.handleBindError(c, err, op)
		return
	}

	log := h.log.Ctx(c.Request.Context())
	log.LogAttrs(c.Request.Context(), logger.DebugLevel, "search submitted",
		logger.String("op", op),
		logger.String("session_id", sess.ID),
		logger.String("input", req.OrderID),
	)

	done := h.sessions.Submit(c.Request.Context(), sess, req.OrderID)

	timer := time.NewTimer(h.searchWait)
	defer timer.Stop()

	settled := true
	select {
	case <-done:
	case <-timer.C:
		settled = false
	}
	log.LogAttrs(c.Request.Context(), logger.DebugLevel, "search answered",
		logger.String("op", op),
		logger.String("session_id", sess.ID),
		logger.Bool("settled", settled),
	)

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, regionResponse(sess))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *WidgetHandler) resultHandler(c *gin.Context) {
	c.JSON(http.StatusOK, regionResponse(sessionFrom(c)))
}

func regionResponse(sess *Session) resultResponse {
	var resp resultResponse
	sess.Engine.Observe(func(s widget.State) {
		resp = resultResponse{
			State:    string(s.Kind()),
			Revision: sess.Region.Revision(),
			HTML:     sess.Region.Content(),
		}
	})
	return resp
}

package httpt_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"orderlookup/internal/config"
	"orderlookup/internal/orderapi"
	"orderlookup/internal/orderstub"
	"orderlookup/internal/render"
	httpt "orderlookup/internal/transport/http"
	"orderlookup/internal/widget"
	"orderlookup/pkg/cache"
	"orderlookup/pkg/logger"
	"orderlookup/pkg/metric"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

type WidgetHandlerTestSuite struct {
	suite.Suite

	ids      []string
	hits     atomic.Int64
	sessions *httpt.SessionStore
	router   http.Handler
}

func (s *WidgetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewFromZap(zaptest.NewLogger(s.T()))

	store := orderstub.NewStore()
	s.ids = store.Seed(gofakeit.New(3), 1)
	s.hits.Store(0)

	stub := orderstub.NewServer(store, log)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		stub.ServeHTTP(w, r)
	}))

	client, err := orderapi.NewClient(config.Client{BaseURL: backend.URL, MaxIdleConnsPerHost: 2}, log)
	s.Require().NoError(err)

	renderer, err := render.NewHTMLRenderer(render.Options{Locale: "en", Location: time.UTC, Currency: "₽"})
	s.Require().NoError(err)

	factory := metric.NewFactory()
	sessionCache, err := cache.NewLRUCache[string, *httpt.Session](10, log, factory.Session())
	s.Require().NoError(err)

	s.sessions = httpt.NewSessionStore(sessionCache, func(region widget.Region) *widget.Engine {
		return widget.NewEngine(client, renderer, region, log, factory.Lookup())
	}, time.Minute, log)

	handler, err := httpt.NewWidgetHandler(s.sessions, renderer.Localizer(), log, factory.HTTP(),
		httpt.WithSearchWait(5*time.Second))
	s.Require().NoError(err)
	s.router = handler.Engine()

	s.T().Cleanup(func() {
		s.sessions.Close()
		backend.Close()
	})
}

func (s *WidgetHandlerTestSuite) do(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *WidgetHandlerTestSuite) newSession() *http.Cookie {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil), nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "order_widget_session" {
			return c
		}
	}
	s.FailNow("no session cookie issued")
	return nil
}

func (s *WidgetHandlerTestSuite) search(cookie *http.Cookie, raw string) *httptest.ResponseRecorder {
	form := url.Values{"order_id": {raw}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	return s.do(req, cookie)
}

func (s *WidgetHandlerTestSuite) result(cookie *http.Cookie) map[string]any {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/result", nil), cookie)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *WidgetHandlerTestSuite) TestHealth() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil), nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *WidgetHandlerTestSuite) TestIndexShowsIdleForm() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil), nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `name="order_id"`)
	s.Contains(rec.Body.String(), "Enter an order UID and press Find.")
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
	s.Equal(1, s.sessions.Len())
}

func (s *WidgetHandlerTestSuite) TestBlankSearchNeverReachesBackend() {
	cookie := s.newSession()

	rec := s.search(cookie, "   ")
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/", rec.Header().Get("Location"))

	body := s.result(cookie)
	s.Equal("error", body["state"])
	s.Contains(body["html"], "identifier required")
	s.Zero(s.hits.Load())
}

func (s *WidgetHandlerTestSuite) TestSearchFound() {
	cookie := s.newSession()
	id := s.ids[0]

	s.Equal(http.StatusSeeOther, s.search(cookie, "  "+id+"\t").Code)

	body := s.result(cookie)
	s.Equal("result", body["state"])
	s.Contains(body["html"], id)
	s.Equal(int64(1), s.hits.Load())

	page := s.do(httptest.NewRequest(http.MethodGet, "/", nil), cookie)
	s.Contains(page.Body.String(), `class="card"`)
	s.NotContains(page.Body.String(), `http-equiv="refresh"`)
}

func (s *WidgetHandlerTestSuite) TestSearchNotFound() {
	cookie := s.newSession()

	s.search(cookie, "missing")

	body := s.result(cookie)
	s.Equal("error", body["state"])
	s.Contains(body["html"], "order not found")
}

func (s *WidgetHandlerTestSuite) TestSearchJSON() {
	cookie := s.newSession()

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"order_id":"`+s.ids[0]+`"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rec := s.do(req, cookie)

	s.Equal(http.StatusOK, rec.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("result", body["state"])
}

func (s *WidgetHandlerTestSuite) TestMalformedJSONRejected() {
	cookie := s.newSession()

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	rec := s.do(req, cookie)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("idle", s.result(cookie)["state"])
}

func (s *WidgetHandlerTestSuite) TestSessionsAreIsolated() {
	first := s.newSession()
	second := s.newSession()
	s.NotEqual(first.Value, second.Value)

	s.search(first, "missing")

	s.Equal("error", s.result(first)["state"])
	s.Equal("idle", s.result(second)["state"])
}

func (s *WidgetHandlerTestSuite) TestUnknownCookieGetsNewSession() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil), &http.Cookie{Name: "order_widget_session", Value: "bogus"})

	s.Equal(http.StatusOK, rec.Code)
	s.Require().Len(rec.Result().Cookies(), 1)
	s.NotEqual("bogus", rec.Result().Cookies()[0].Value)
}

func TestWidgetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WidgetHandlerTestSuite))
}

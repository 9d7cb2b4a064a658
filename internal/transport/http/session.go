package httpt

import (
	"context"
	"sync"
	"time"

	"orderlookup/internal/widget"
	"orderlookup/pkg/cache"
	"orderlookup/pkg/logger"

	"github.com/google/uuid"
)

// Session is one browser's widget: its own region, engine and controller.
type Session struct {
	ID         string
	Region     *widget.BufferRegion
	Engine     *widget.Engine
	Controller *widget.Controller

	mu    sync.Mutex
	input string
}

func (s *Session) SetInput(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = raw
}

func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// EngineBuilder wires a new engine to the region of a fresh session.
type EngineBuilder func(region widget.Region) *widget.Engine

type SessionStore struct {
	cache cache.Cache[string, *Session]
	build EngineBuilder
	ttl   time.Duration
	log   logger.Logger

	mu       sync.Mutex
	inflight sync.WaitGroup

	base   context.Context
	cancel context.CancelFunc
}

func NewSessionStore(
	c cache.Cache[string, *Session],
	build EngineBuilder,
	ttl time.Duration,
	log logger.Logger,
) *SessionStore {
	base, cancel := context.WithCancel(context.Background())
	s := &SessionStore{cache: c, build: build, ttl: ttl, log: log, base: base, cancel: cancel}

	c.SetOnEvicted(func(id string, _ *Session, reason string) {
		log.Debugw("session evicted", "session_id", id, "reason", reason)
	})

	return s
}

// Acquire returns the session for id, creating a new one when id is unknown or expired.
func (s *SessionStore) Acquire(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.cache.Get(id); ok {
			return sess, false
		}
	}

	region := widget.NewBufferRegion()
	engine := s.build(region)
	sess := &Session{
		ID:         uuid.NewString(),
		Region:     region,
		Engine:     engine,
		Controller: widget.NewController(engine, s.log),
	}
	s.cache.Put(sess.ID, sess, s.ttl)

	s.log.Debugw("session created", "session_id", sess.ID)
	return sess, true
}

// Submit runs a search for sess detached from ctx cancellation and returns a
// channel closed when the search settles. Close cancels searches still running.
func (s *SessionStore) Submit(ctx context.Context, sess *Session, raw string) <-chan struct{} {
	sess.SetInput(raw)

	lookupCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(s.base, cancel)

	done := make(chan struct{})
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer close(done)
		defer cancel()
		defer stop()
		sess.Controller.SubmitSearch(lookupCtx, raw)
	}()
	return done
}

func (s *SessionStore) Len() int {
	return s.cache.Len()
}

// Close cancels searches still in flight, waits for them to settle and drops all sessions.
func (s *SessionStore) Close() {
	s.cancel()
	s.inflight.Wait()
	s.cache.StopCleanup()
	s.cache.Purge()
}

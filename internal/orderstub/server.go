package orderstub

import (
	"encoding/json"
	"net/http"
	"time"

	"orderlookup/pkg/logger"

	"github.com/gorilla/mux"
)

// Server imitates the remote order service contract consumed by the widget.
type Server struct {
	Router *mux.Router
	store  *Store
	log    logger.Logger
	delay  time.Duration
}

type ServerOption func(*Server)

// WithDelay holds every order response, which makes the widget's loading state observable.
func WithDelay(d time.Duration) ServerOption {
	return func(s *Server) {
		s.delay = d
	}
}

func NewServer(store *Store, log logger.Logger, opts ...ServerOption) *Server {
	s := &Server{
		Router: mux.NewRouter(),
		store:  store,
		log:    log,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Router.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	s.Router.HandleFunc("/ids", s.handleListIDs).Methods(http.MethodGet)
	s.Router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-r.Context().Done():
			return
		}
	}

	order, ok := s.store.Get(id)
	if !ok {
		s.log.Infow("order not found", "order_uid", id)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	s.log.Debugw("order served", "order_uid", id)
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleListIDs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.IDs())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

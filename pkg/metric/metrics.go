package metric

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=metrics.go -destination=mock/metrics.go -package=mock_metric

type (
	Factory interface {
		HTTP() HTTP
		Lookup() Lookup
		Session() Session
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	// Lookup covers the request lifecycle of the widget engine.
	Lookup interface {
		Outcome(outcome string, duration time.Duration)
		StaleResponse()
		Transition(state string)
	}

	Session interface {
		Hit()
		Miss()
		Eviction(reason string)
		Size(size int)
	}
)

// Lookup outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeServer    = "server_error"
	OutcomeTransport = "transport_error"
)

func statusClass(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "5xx"
	case status >= http.StatusBadRequest:
		return "4xx"
	case status >= http.StatusMultipleChoices:
		return "3xx"
	default:
		return "2xx"
	}
}

package widget

import (
	"fmt"

	"orderlookup/internal/entity"
)

type Kind string

const (
	KindIdle    Kind = "idle"
	KindLoading Kind = "loading"
	KindResult  Kind = "result"
	KindError   Kind = "error"
)

// State is the closed set of display states. Only this package can add members.
type State interface {
	Kind() Kind
	state()
}

type (
	Idle struct{}

	Loading struct {
		OrderID entity.OrderID
	}

	Result struct {
		OrderID entity.OrderID
		Order   *entity.Order
	}

	Error struct {
		Err error
	}
)

func (Idle) Kind() Kind    { return KindIdle }
func (Loading) Kind() Kind { return KindLoading }
func (Result) Kind() Kind  { return KindResult }
func (Error) Kind() Kind   { return KindError }

func (Idle) state()    {}
func (Loading) state() {}
func (Result) state()  {}
func (Error) state()   {}

// Message is the user-facing text of the error.
func (e Error) Message() string {
	return entity.Describe(e.Err)
}

// Visitor handles every display state. A new state means a new method here,
// so every renderer stops compiling until it handles it.
type Visitor[R any] interface {
	Idle(Idle) R
	Loading(Loading) R
	Result(Result) R
	Error(Error) R
}

func Visit[R any](s State, v Visitor[R]) R {
	switch st := s.(type) {
	case Idle:
		return v.Idle(st)
	case Loading:
		return v.Loading(st)
	case Result:
		return v.Result(st)
	case Error:
		return v.Error(st)
	default:
		panic(fmt.Sprintf("widget: unhandled state %T", s))
	}
}

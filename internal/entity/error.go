package entity

import (
	"errors"
	"fmt"
)

var (
	ErrIdentifierRequired = errors.New("identifier required")
	ErrOrderNotFound      = errors.New("order not found")
	ErrConfigPathNotSet   = errors.New("CONFIG_PATH not set and -config flag not provided")
)

// ServerError is returned for any non-2xx status other than 404.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d", e.Status)
}

// TransportError wraps failures where no usable response was obtained:
// the request could not be completed or the body could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Describe returns the text shown to the user for err.
func Describe(err error) string {
	var (
		serverErr    *ServerError
		transportErr *TransportError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIdentifierRequired):
		return ErrIdentifierRequired.Error()
	case errors.Is(err, ErrOrderNotFound):
		return ErrOrderNotFound.Error()
	case errors.As(err, &serverErr):
		return serverErr.Error()
	case errors.As(err, &transportErr):
		return transportErr.Error()
	default:
		return err.Error()
	}
}

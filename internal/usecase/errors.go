package usecase

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrGateway               = errors.New("gateway error")
	ErrUniquenessExhausted   = errors.New("uniqueness attempts exhausted")
	ErrLineupLocked          = errors.New("lineup is locked")
)

// GatewayError is a failure reported by the remote data gateway or a remote
// function. Message carries the upstream text unchanged.
type GatewayError struct {
	Op      string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString("gateway error")
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}

// wrapGatewayError classifies an adapter failure for op. Errors that already
// carry a usecase classification pass through unchanged.
func wrapGatewayError(op string, err error) error {
	if err == nil {
		return nil
	}

	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return err
	}
	for _, known := range []error{ErrInvalidInput, ErrNotFound, ErrUnauthorized, ErrDependencyUnavailable, ErrUniquenessExhausted, ErrLineupLocked} {
		if errors.Is(err, known) {
			return err
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return &GatewayError{Op: op, Message: err.Error(), Err: err}
}

package internal

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindConfig   ErrorKind = "config"
	KindProvider ErrorKind = "provider"
	KindMail     ErrorKind = "mail"
)

var (
	ErrConfig   = errors.New("invalid configuration")
	ErrProvider = errors.New("sleep provider call failed")
	ErrMail     = errors.New("mail relay call failed")
)

// AppError classifies a failure that aborts the run.
type AppError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func NewAppError(kind ErrorKind, op string, err error) *AppError {
	return &AppError{Kind: kind, Op: op, Err: err}
}

func (e *AppError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is lets errors.Is match an AppError against the sentinel for its kind.
func (e *AppError) Is(target error) bool {
	switch e.Kind {
	case KindConfig:
		return target == ErrConfig
	case KindProvider:
		return target == ErrProvider
	case KindMail:
		return target == ErrMail
	}
	return false
}

// KindOf reports the kind of the first AppError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return "", false
}

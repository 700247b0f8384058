package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound  = fmt.Errorf("user not found")
	ErrChatNotFound  = fmt.Errorf("chat not found")
	ErrStaffNotFound = fmt.Errorf("no receptionist registered for hotel")
	ErrWorkerPanic   = fmt.Errorf("worker panic")
)

// Is, As and Join re-export the standard helpers so callers never have to
// import this package and the standard errors package side by side.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

func Join(errs ...error) error { return errors.Join(errs...) }

package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = fmt.Errorf("%w: user name already registered", ErrConstraintViolation)
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User carries the stored password verbatim. It must never reach a response body.
type User struct {
	ID        int64
	Name      string
	Password  string
	CreatedAt time.Time
}

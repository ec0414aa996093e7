package entity

import "errors"

// ErrConstraintViolation is wrapped by every unique-key collision on insert or update.
var ErrConstraintViolation = errors.New("constraint violation")

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Page is an offset/limit window over rows in insertion order.
// Offset is unbounded above; a window past the last row is simply empty.
type Page struct {
	Offset int64
	Limit  int32
}

func DefaultPage() Page {
	return Page{Offset: 0, Limit: DefaultPageLimit}
}

package batch

import (
	"errors"
)

var (
	// ErrNoEmailColumn is returned before any row work when a delivery
	// batch does not name the dataset column holding recipients.
	ErrNoEmailColumn = errors.New("email column is not set")
)

package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSteps  = errors.New("mesh requires at least one step")
	ErrColumnCount   = errors.New("wrong number of columns in parameter row")
	ErrInvalidParams = errors.New("invalid option parameters")
)

// NotImplementedError is returned when an option variant is asked for a
// capability it does not have, e.g. Delta on a perpetual option.
type NotImplementedError struct {
	Op string
}

func (e *NotImplementedError) Error() string {
	op := e.Op
	if op == "" {
		op = "an unspecified function"
	}
	return fmt.Sprintf("%s has been called, but no implementation of it exists for this option", op)
}

package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOutOfStock         = errors.New("meal is out of stock")
	ErrInvalidOrder       = errors.New("missing order data")
	ErrTotalMismatch      = errors.New("total amount does not match line prices")
	ErrBadGroupBounds     = errors.New("min_select cannot exceed max_select")
)

// SelectionError reports the first modifier group whose required minimum is
// not met. Callers surface one violation at a time.
type SelectionError struct {
	GroupID   uint
	GroupName string
	Need      int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("select at least %d option(s) in %q", e.Need, e.GroupName)
}

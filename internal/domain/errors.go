package domain

import (
	"errors"
	"fmt"
)

// Sentinel causes for date validation, wrapped inside ValidationError so
// callers can branch with errors.Is without string matching.
var (
	ErrInvalidDateRange = errors.New("check_out_date must be after check_in_date")
	ErrPastCheckIn      = errors.New("check_in_date cannot be in the past")
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// InsufficientInventoryError reports a stay night with no room left (or no
// availability record at all).
type InsufficientInventoryError struct {
	RoomType string
	Date     string
	Err      error
}

func (e InsufficientInventoryError) Error() string {
	if e.RoomType != "" && e.Date != "" {
		return fmt.Sprintf("no rooms available for %s on %s", e.RoomType, e.Date)
	}
	return "no rooms available for requested dates"
}

func (e InsufficientInventoryError) Unwrap() error { return e.Err }

// TransactionError wraps a failed begin/commit of a multi-statement unit.
type TransactionError struct {
	Op  string
	Err error
}

func (e TransactionError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("transaction failed during %s", e.Op)
	}
	return "transaction failed"
}

func (e TransactionError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInsufficientInventory(err error) bool {
	var target InsufficientInventoryError
	return errors.As(err, &target)
}

func IsTransaction(err error) bool {
	var target TransactionError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

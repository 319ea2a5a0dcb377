package repository

import (
	"fmt"
	"strings"
)

// Error is a repository failure surfaced to callers. Services propagate it
// verbatim; nothing in the service layer retries or swallows it.
type Error struct {
	Op   string // operation, e.g. "products.list"
	Code string // provider-specific code when one can be determined
	Err  error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("repository: %s (%s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("repository: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// wrapErr wraps a driver error with the failing operation. nil in, nil out.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Code: driverCode(err), Err: err}
}

// driverCode extracts a coarse code from the driver error text. The libsql
// driver does not expose structured codes, so this is best effort.
func driverCode(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint"):
		return "constraint_unique"
	case strings.Contains(msg, "FOREIGN KEY constraint"):
		return "constraint_fk"
	case strings.Contains(msg, "no such table"):
		return "schema"
	default:
		return ""
	}
}

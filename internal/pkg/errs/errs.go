package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Taxonomy markers. Every user-facing failure belongs to exactly one of
// these classes; the HTTP layer maps the class to a status code.
var (
	kindNotFound   = cr.New("resource not found")
	kindValidation = cr.New("validation failed")
	kindForbidden  = cr.New("forbidden")
	kindDuplicated = cr.New("duplicated")
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// NotFound builds a sentinel for an absent resource.
func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), kindNotFound)
}

// Validation builds a sentinel for malformed or business-rule-violating input.
func Validation(msg string) error {
	return cr.Mark(cr.New(msg), kindValidation)
}

// Forbidden builds a sentinel for an actor lacking rights over a resource.
func Forbidden(msg string) error {
	return cr.Mark(cr.New(msg), kindForbidden)
}

// Duplicated builds a sentinel for a uniqueness violation.
func Duplicated(msg string) error {
	return cr.Mark(cr.New(msg), kindDuplicated)
}

func IsNotFound(err error) bool   { return cr.Is(err, kindNotFound) }
func IsValidation(err error) bool { return cr.Is(err, kindValidation) }
func IsForbidden(err error) bool  { return cr.Is(err, kindForbidden) }
func IsDuplicated(err error) bool { return cr.Is(err, kindDuplicated) }

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// TrimmedString dereferences an optional string and trims it; nil stays nil so
// "field absent" and "field blank" remain distinguishable.
func TrimmedString(ptr *string) *string {
	if ptr == nil {
		return nil
	}
	t := strings.TrimSpace(*ptr)
	return &t
}

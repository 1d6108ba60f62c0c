package core

import "strings"

// Currency is an immutable display value. Two currencies are the same
// currency when their codes match.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// SameCurrency reports whether a and b share a code.
func SameCurrency(a, b Currency) bool {
	return a.Code == b.Code
}

// IndexOfCode returns the position of the first currency with the given code,
// or -1. The comparison ignores case.
func IndexOfCode(currencies []Currency, code string) int {
	code = strings.TrimSpace(code)
	if code == "" {
		return -1
	}
	for i := range currencies {
		if strings.EqualFold(currencies[i].Code, code) {
			return i
		}
	}
	return -1
}

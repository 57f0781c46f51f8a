package errors

import (
	"strings"

	"github.com/kvokka/her/errors/class"
)

// MultiError is the slice of classified errors parsable into a single error.
type MultiError []ClassError

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}
	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// HasMajor checks if provided 'mjr' occurs in given multi error slice.
func (m MultiError) HasMajor(mjr class.Major) bool {
	for _, e := range m {
		if e.Class().IsMajor(mjr) {
			return true
		}
	}
	return false
}

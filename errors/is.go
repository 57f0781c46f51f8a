package errors

import (
	"github.com/kvokka/her/errors/class"
)

// IsClass checks if given error is of given 'class'.
func IsClass(err error, c class.Class) bool {
	classError, ok := err.(ClassError)
	if !ok {
		return false
	}
	return classError.Class() == c
}

// IsMajor checks if given error is classified with the major 'mjr'.
func IsMajor(err error, mjr class.Major) bool {
	classError, ok := err.(ClassError)
	if !ok {
		return false
	}
	return classError.Class().IsMajor(mjr)
}

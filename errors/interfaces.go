package errors

import (
	"github.com/kvokka/her/errors/class"
)

// ClassError is the interface for errors that contain their classification.
type ClassError interface {
	error
	// Class gets the error classification.
	Class() class.Class
}

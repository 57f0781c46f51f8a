// Package log contains the leveled logger used by the her packages.
// By default no logger is set and all the logging functions are no-ops.
// Use Default, New or SetLogger to enable logging.
package log

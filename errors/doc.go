// Package errors contains classified error definitions used by the her
// project. Each error instance gets its own unique ID and a class.Class
// composed of the major, minor and index subclassifications.
package errors

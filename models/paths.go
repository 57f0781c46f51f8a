package models

import (
	"fmt"
	"strings"

	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
)

// ResolvePath resolves the ':param' placeholders of the path 'template'
// with the values from 'fields'. A missing key, a nil value or an empty
// string value fails with the 'class.PathMissingParam' error. The function
// is pure - it performs no I/O.
func ResolvePath(template string, fields map[string]interface{}) (string, error) {
	if template == "" {
		return "", errors.New(class.PathTemplateEmpty, "provided empty path template")
	}

	segments := strings.Split(template, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		param := segment[1:]

		value, ok := fields[param]
		if !ok || isBlank(value) {
			return "", errors.Newf(class.PathMissingParam, "path parameter: '%s' is missing or blank", param)
		}
		segments[i] = fmt.Sprint(value)
	}
	return strings.Join(segments, "/"), nil
}

func isBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

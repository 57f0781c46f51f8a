package namer

import (
	"github.com/iancoleman/strcase"
)

// Namer is the function strategy how the model, collection and field
// names are being formatted.
type Namer func(string) string

// NamingSnake is a Namer function.
// It converts the name into the 'snake_case_model' form.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function.
// It converts the name into the 'kebab-case-model' form.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function.
// It converts the name into the 'CamelCaseModel' form.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function.
// It converts the name into the 'camelCaseModel' form.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}

package config

import (
	"time"
)

// Controller defines the configuration for the her Controller.
type Controller struct {
	// NamingConvention is the naming convention used while preparing the
	// model collections, data keys and foreign keys.
	// Allowed values:
	// - camel
	// - lowercamel
	// - snake
	// - kebab
	NamingConvention string `mapstructure:"naming_convention" validate:"isdefault|oneof=camel lowercamel snake kebab"`

	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`

	// BaseURL is the root url of the remote API the models are backed by.
	// When set, the controller builds the default rest resource loader on it.
	BaseURL string `mapstructure:"base_url"`

	// Resource defines the configuration of the default resource loader.
	Resource *Resource `mapstructure:"resource"`

	// Models defines the per model configuration overrides, keyed by the
	// model name.
	Models map[string]*Model `mapstructure:"models"`
}

// Resource contains the default resource loader settings.
type Resource struct {
	// Timeout is the single request timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	// Headers are added to every outgoing request.
	Headers map[string]string `mapstructure:"headers"`
}

// Model defines a single model configuration overrides.
type Model struct {
	// Collection overrides the pluralized collection name.
	Collection string `mapstructure:"collection"`

	// Primary overrides the primary key field name.
	Primary string `mapstructure:"primary"`

	// ResourcePath overrides the canonical resource path template.
	ResourcePath string `mapstructure:"resource_path"`
}

package config

import (
	"time"
)

// Default returns the default controller configuration.
func Default() *Controller {
	return &Controller{
		NamingConvention: "snake",
		LogLevel:         "info",
		Resource:         &Resource{Timeout: time.Second * 30},
		Models:           map[string]*Model{},
	}
}

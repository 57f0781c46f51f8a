package her

import (
	"github.com/kvokka/her/config"
	"github.com/kvokka/her/log"
	"github.com/kvokka/her/models"
)

var defaultController *Controller

// Default returns the default controller, creating it with the default
// configuration at first use.
func Default() *Controller {
	if defaultController == nil {
		c, err := New(config.Default())
		if err != nil {
			// The default configuration is valid by construction.
			log.Fatalf("Creating the default controller failed: %v", err)
		}
		defaultController = c
	}
	return defaultController
}

// SetDefault sets 'c' as the default controller.
func SetDefault(c *Controller) {
	defaultController = c
}

// RegisterModel registers the model within the default controller.
func RegisterModel(name string, options ...models.ModelOption) (*models.ModelStruct, error) {
	return Default().RegisterModel(name, options...)
}

// ModelStruct gets the model with provided 'name' from the default
// controller.
func ModelStruct(name string) (*models.ModelStruct, error) {
	return Default().ModelStruct(name)
}

// SetResource sets the default resource loader of the default controller.
func SetResource(resource models.ResourceLoader) {
	Default().SetResource(resource)
}

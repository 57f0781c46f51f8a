package her

import (
	"strings"

	validator "gopkg.in/go-playground/validator.v9"

	"github.com/kvokka/her/config"
	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
	"github.com/kvokka/her/log"
	"github.com/kvokka/her/models"
	"github.com/kvokka/her/namer"
	"github.com/kvokka/her/rest"
)

// Controller is the root structure that ties the configuration, the model
// map and the default resource loader together. All model registrations
// go through the controller, which applies the per model configuration
// overrides on the way.
type Controller struct {
	// Config is the configuration the controller was created with.
	Config *config.Controller

	// NamerFunc is the naming strategy selected by the configuration.
	NamerFunc namer.Namer

	// ModelMap contains the registered model definitions.
	ModelMap *models.ModelMap

	// Validator validates the configuration structures.
	Validator *validator.Validate
}

// New creates the controller for provided configuration 'cfg'. A nil
// configuration means the defaults.
func New(cfg *config.Controller) (*Controller, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	c := &Controller{
		Config:    cfg,
		Validator: validator.New(),
	}

	if err := c.Validator.Struct(cfg); err != nil {
		return nil, errors.Newf(class.ConfigValueInvalid, "validating the controller configuration failed: %v", err)
	}

	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, errors.Newf(class.ConfigValueLogLevel, "invalid 'log_level' configuration value: '%s'", cfg.LogLevel)
		}
		if log.Logger() == nil {
			log.Default()
		}
		if err = log.SetLevel(level); err != nil {
			return nil, err
		}
	}

	namerFunc, err := namingNamer(cfg.NamingConvention)
	if err != nil {
		return nil, err
	}
	c.NamerFunc = namerFunc
	c.ModelMap = models.NewModelMap(namerFunc)

	if cfg.BaseURL != "" {
		options := []rest.Option{rest.WithBaseURL(cfg.BaseURL)}
		if cfg.Resource != nil {
			if cfg.Resource.Timeout > 0 {
				options = append(options, rest.WithTimeout(cfg.Resource.Timeout))
			}
			for key, value := range cfg.Resource.Headers {
				options = append(options, rest.WithHeader(key, value))
			}
		}

		repository, err := rest.New(options...)
		if err != nil {
			return nil, err
		}
		c.ModelMap.SetDefaultResource(repository)
		log.Debugf("Controller uses the REST resource loader at: '%s'", cfg.BaseURL)
	}
	return c, nil
}

// RegisterModel registers the model definition under provided 'name'.
// The matching per model configuration overrides - collection, primary
// key and resource path - take precedence over the options provided in
// the code.
func (c *Controller) RegisterModel(name string, options ...models.ModelOption) (*models.ModelStruct, error) {
	if modelConfig, ok := c.Config.Models[name]; ok {
		if modelConfig.Collection != "" {
			options = append(options, models.WithCollection(modelConfig.Collection))
		}
		if modelConfig.Primary != "" {
			options = append(options, models.WithPrimary(modelConfig.Primary))
		}
		if modelConfig.ResourcePath != "" {
			options = append(options, models.WithResourcePath(modelConfig.ResourcePath))
		}
	}
	return c.ModelMap.RegisterModel(name, options...)
}

// ModelStruct gets the registered model with provided 'name'.
func (c *Controller) ModelStruct(name string) (*models.ModelStruct, error) {
	mStruct, ok := c.ModelMap.Model(name)
	if !ok {
		return nil, errors.Newf(class.ModelNotMapped, "model: '%s' is not mapped", name)
	}
	return mStruct, nil
}

// SetResource sets the default resource loader used by the models without
// their own loader.
func (c *Controller) SetResource(resource models.ResourceLoader) {
	c.ModelMap.SetDefaultResource(resource)
}

// namingNamer maps the 'naming_convention' configuration value into the
// namer function. The empty value defaults to the snake case.
func namingNamer(convention string) (namer.Namer, error) {
	switch strings.ToLower(convention) {
	case "", "snake":
		return namer.NamingSnake, nil
	case "kebab":
		return namer.NamingKebab, nil
	case "camel":
		return namer.NamingCamel, nil
	case "lowercamel":
		return namer.NamingLowerCamel, nil
	}
	return nil, errors.Newf(class.ConfigValueNamingConvention, "unsupported 'naming_convention' configuration value: '%s'", convention)
}

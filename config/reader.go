package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
	"github.com/kvokka/her/log"
)

var defaultConfig *Controller

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadConfig reads the config file named 'config' from the current
// directory or the 'configs' subdirectory.
func ReadConfig() (*Controller, error) {
	return readNamedConfig("config")
}

// ReadNamedConfig reads the config with the provided name.
func ReadNamedConfig(name string) (*Controller, error) {
	return readNamedConfig(name)
}

// ReadDefaultConfig reads the default controller configuration.
func ReadDefaultConfig() *Controller {
	if defaultConfig == nil {
		v := viper.New()
		setDefaults(v)

		c := &Controller{}
		if err := v.Unmarshal(c); err != nil {
			log.Debugf("Unmarshaling default config failed: %v", err)
			panic(err)
		}
		defaultConfig = c
	}
	return defaultConfig
}

func readNamedConfig(name string) (*Controller, error) {
	v := viper.New()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Newf(class.ConfigReadFailed, "reading config: '%s' failed", name).SetDetailf("%v", err)
	}

	c := &Controller{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling config: '%s' failed: %v", name, err)
		return nil, errors.Newf(class.ConfigUnmarshal, "unmarshaling config: '%s' failed", name).SetDetailf("%v", err)
	}

	return c, nil
}

func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"naming_convention": "snake",
		"log_level":         "info",
		"resource.timeout":  time.Second * 30,
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}

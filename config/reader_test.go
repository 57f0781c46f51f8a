package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadDefaultConfig tests reading the default configuration values.
func TestReadDefaultConfig(t *testing.T) {
	c := ReadDefaultConfig()
	require.NotNil(t, c)

	assert.Equal(t, "snake", c.NamingConvention)
	assert.Equal(t, "info", c.LogLevel)
	if assert.NotNil(t, c.Resource) {
		assert.Equal(t, time.Second*30, c.Resource.Timeout)
	}
}

// TestViperSetDefaults tests setting the defaults on an external viper.
func TestViperSetDefaults(t *testing.T) {
	v := viper.New()
	ViperSetDefaults(v)

	assert.Equal(t, "snake", v.GetString("naming_convention"))
	assert.Equal(t, "info", v.GetString("log_level"))
}

// TestDefault tests the static default config.
func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Equal(t, "snake", c.NamingConvention)
	assert.NotNil(t, c.Models)
}

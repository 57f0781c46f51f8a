package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNamers tests the naming convention functions.
func TestNamers(t *testing.T) {
	assert.Equal(t, "admin_user", NamingSnake("AdminUser"))
	assert.Equal(t, "admin-user", NamingKebab("AdminUser"))
	assert.Equal(t, "AdminUser", NamingCamel("admin_user"))
	assert.Equal(t, "adminUser", NamingLowerCamel("admin_user"))
}

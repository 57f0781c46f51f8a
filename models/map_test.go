package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
)

// TestRegisterModel tests the model registration defaults and overrides.
func TestRegisterModel(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		m, _ := testingModelMap(t)

		user := registerTestModel(t, m, "User")
		assert.Equal(t, "User", user.Name())
		assert.Equal(t, "User", user.ModelName())
		assert.Equal(t, "", user.Namespace())
		assert.Equal(t, "users", user.Collection())
		assert.Equal(t, "id", user.Primary())
		assert.Equal(t, "/users/:id", user.ResourcePath())
		assert.Equal(t, "/users", user.CollectionPath())
	})

	t.Run("PluralizedCollection", func(t *testing.T) {
		m, _ := testingModelMap(t)

		category := registerTestModel(t, m, "Category")
		assert.Equal(t, "categories", category.Collection())
		assert.Equal(t, "/categories/:id", category.ResourcePath())
	})

	t.Run("Options", func(t *testing.T) {
		m, _ := testingModelMap(t)

		person := registerTestModel(t, m, "Person",
			WithCollection("people"),
			WithPrimary("uuid"),
		)
		assert.Equal(t, "people", person.Collection())
		assert.Equal(t, "uuid", person.Primary())
		assert.Equal(t, "/people/:uuid", person.ResourcePath())

		byCollection, ok := m.ModelByCollection("people")
		require.True(t, ok)
		assert.Equal(t, person, byCollection)
	})

	t.Run("CustomResourcePath", func(t *testing.T) {
		m, _ := testingModelMap(t)

		user := registerTestModel(t, m, "User", WithResourcePath("/admin/users/:id"))
		assert.Equal(t, "/admin/users/:id", user.ResourcePath())
		assert.Equal(t, "/admin/users", user.CollectionPath())
	})

	t.Run("EmptyName", func(t *testing.T) {
		m, _ := testingModelMap(t)

		_, err := m.RegisterModel("")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelDefinition))
	})

	t.Run("DuplicatedName", func(t *testing.T) {
		m, _ := testingModelMap(t)

		registerTestModel(t, m, "User")
		_, err := m.RegisterModel("User")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelAlreadyRegistered))
	})

	t.Run("DuplicatedCollection", func(t *testing.T) {
		m, _ := testingModelMap(t)

		registerTestModel(t, m, "User")
		_, err := m.RegisterModel("Account", WithCollection("users"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelAlreadyRegistered))
	})

	t.Run("Namespaced", func(t *testing.T) {
		m, _ := testingModelMap(t)

		admin := registerTestModel(t, m, "admin.User", WithCollection("admin_users"))
		assert.Equal(t, "admin.User", admin.Name())
		assert.Equal(t, "admin", admin.Namespace())
		assert.Equal(t, "User", admin.ModelName())
	})
}

// TestResolveModel tests the related model name resolution.
func TestResolveModel(t *testing.T) {
	m, _ := testingModelMap(t)

	user := registerTestModel(t, m, "User")
	adminUser := registerTestModel(t, m, "admin.User", WithCollection("admin_users"))
	adminRole := registerTestModel(t, m, "admin.Role")

	t.Run("Qualified", func(t *testing.T) {
		resolved, err := m.resolveModel("admin.User", nil)
		require.NoError(t, err)
		assert.Equal(t, adminUser, resolved)
	})

	t.Run("RelativeWithinNamespace", func(t *testing.T) {
		// A bare name resolves within the context model's namespace first.
		resolved, err := m.resolveModel("User", adminRole)
		require.NoError(t, err)
		assert.Equal(t, adminUser, resolved)
	})

	t.Run("RelativeTopLevel", func(t *testing.T) {
		resolved, err := m.resolveModel("User", user)
		require.NoError(t, err)
		assert.Equal(t, user, resolved)
	})

	t.Run("NotMapped", func(t *testing.T) {
		_, err := m.resolveModel("Unknown", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelNotMapped))
	})

	t.Run("QualifiedNotMapped", func(t *testing.T) {
		_, err := m.resolveModel("billing.Invoice", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelNotMapped))
	})
}

// TestDerivedModel tests the relationship inheritance at registration time.
func TestDerivedModel(t *testing.T) {
	m, _ := testingModelMap(t)

	user := registerTestModel(t, m, "User")
	registerTestModel(t, m, "Article")
	registerTestModel(t, m, "Comment")

	_, err := user.HasMany("articles")
	require.NoError(t, err)

	admin := registerTestModel(t, m, "Admin", WithParent(user))

	t.Run("CopiesRelations", func(t *testing.T) {
		assert.True(t, admin.HasRelation("articles"))
	})

	t.Run("CopiesPrimary", func(t *testing.T) {
		assert.Equal(t, user.Primary(), admin.Primary())
	})

	t.Run("DeclarationsDoNotLeakBack", func(t *testing.T) {
		_, err := admin.HasMany("comments")
		require.NoError(t, err)

		assert.True(t, admin.HasRelation("comments"))
		assert.False(t, user.HasRelation("comments"))
	})

	t.Run("ParentDeclaredLaterNotInherited", func(t *testing.T) {
		// The derivation copies once, at registration time.
		_, err := user.HasOne("profile")
		require.NoError(t, err)
		assert.False(t, admin.HasRelation("profile"))
	})
}

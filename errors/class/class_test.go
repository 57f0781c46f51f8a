package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassComposition tests the class major, minor and index composition.
func TestClassComposition(t *testing.T) {
	mjr, err := RegisterMajor("Testing Composition")
	require.NoError(t, err)
	require.True(t, mjr.Valid())

	mnr, err := mjr.RegisterMinor("Some Minor")
	require.NoError(t, err)
	require.True(t, mnr.Valid())

	idx, err := mnr.RegisterIndex("Some Index")
	require.NoError(t, err)
	require.True(t, idx.Valid())

	c := idx.Class()
	assert.Equal(t, mjr, c.Major())
	assert.Equal(t, mnr.Value(), c.Minor().Value())
	assert.Equal(t, idx.Value(), c.Index().Value())
	assert.True(t, c.IsMajor(mjr))
	assert.Equal(t, "TestingCompositionSomeMinorSomeIndex", c.String())
}

// TestRegisterDuplicates tests the unique name constraints.
func TestRegisterDuplicates(t *testing.T) {
	mjr := MustRegisterMajor("Testing Duplicates")

	_, err := RegisterMajor("Testing Duplicates")
	assert.Error(t, err)

	mnr := mjr.MustRegisterMinor("Minor")
	_, err = mjr.RegisterMinor("Minor")
	assert.Error(t, err)

	mnr.MustRegisterIndex("Index")
	_, err = mnr.RegisterIndex("Index")
	assert.Error(t, err)
}

// TestRegisteredClasses tests the package level class registration.
func TestRegisteredClasses(t *testing.T) {
	for _, c := range []Class{
		PathMissingParam,
		ModelNotMapped,
		ModelAlreadyRegistered,
		RelationNotFound,
		RelationKindMismatch,
		ResourceStatus,
		ConfigValueInvalid,
		CommonLoggerUnknownLevel,
	} {
		assert.NotEqual(t, Class(0), c)
		assert.True(t, c.Major().Valid())
	}

	assert.True(t, PathMissingParam.IsMajor(MjrPath))
	assert.True(t, ModelNotMapped.IsMajor(MjrModel))
	assert.NotEqual(t, PathMissingParam.MjrMnrMasked(), ResourceStatus.MjrMnrMasked())
}

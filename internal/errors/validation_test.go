package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gw1tools/gw1builds-sub003/internal/errors"
)

func TestValidationBuilder_NoErrors(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())
}

func TestValidationBuilder_CollectsFields(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("GameData")
	vb.InvalidField("MaxURLLen", "must be positive")

	err := vb.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	require.NotNil(t, meta)
	fields, ok := meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "GameData")
	assert.Contains(t, fields, "MaxURLLen")
}

func TestValidateRequired(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "   ", vb)
	assert.Error(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Shiro", vb)
	assert.NoError(t, vb.Build())
}

func TestValidateRange(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("rank", 25, 0, 20, vb)
	assert.Error(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("rank", 12, 0, 20, vb)
	assert.NoError(t, vb.Build())
}

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-press/inkwell/pkg/validator"
)

func TestRequired(t *testing.T) {
	assert.True(t, validator.Required("a", "b"))
	assert.False(t, validator.Required("a", ""))
	assert.False(t, validator.Required("   "))
	assert.True(t, validator.Required())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", validator.NormalizeEmail(" Ada@Example.COM "))
}

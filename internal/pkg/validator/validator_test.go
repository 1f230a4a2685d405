package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("018f2c7e-9a2b-7c3d-8e4f-0123456789ab"))
	assert.True(t, IsValidUUID("C56A4180-65AA-42EC-A945-5FD21DEC0538"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "is required"},
		{Field: "deliveries", Message: "must be non-negative"},
	}

	assert.Equal(t, "month: is required; deliveries: must be non-negative", errs.Error())
	assert.Equal(t, map[string]string{
		"month":      "is required",
		"deliveries": "must be non-negative",
	}, errs.ToMap())
}

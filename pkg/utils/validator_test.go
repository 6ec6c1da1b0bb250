package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	type sample struct {
		URL string `validate:"required,url"`
		Min int    `validate:"min=1"`
	}

	errs := ValidateStruct(sample{})
	assert.Equal(t, "This field is required", errs["URL"])
	assert.Equal(t, "Minimum is 1", errs["Min"])

	assert.Nil(t, ValidateStruct(sample{URL: "http://pay.test", Min: 2}))
}

func TestValidateStructBadURL(t *testing.T) {
	type sample struct {
		URL string `validate:"required,url"`
	}

	errs := ValidateStruct(sample{URL: "not a url"})
	assert.Equal(t, "Must be a valid URL", errs["URL"])
}

func TestFormatValidationErrors(t *testing.T) {
	assert.Equal(t, "", FormatValidationErrors(nil))
	assert.Equal(t, "URL: This field is required",
		FormatValidationErrors(map[string]string{"URL": "This field is required"}))
}

package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type query struct {
	Limit  int    `validate:"min=1,max=20"`
	League string `validate:"required"`
	From   string `validate:"omitempty,datetime=2006-01-02"`
}

func TestParseError_ValidationErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(query{Limit: 50, From: "09/03/2024"})

	got := ParseError(err)
	assert.Equal(t, "The Limit field must be at most 20.", got["Limit"])
	assert.Equal(t, "The League field is required.", got["League"])
	assert.Equal(t, "The From field must be a date formatted as 2006-01-02.", got["From"])
}

func TestParseError_OtherErrors(t *testing.T) {
	got := ParseError(errors.New("strconv.ParseInt: parsing \"ten\": invalid syntax"))
	assert.Contains(t, got["error"], "invalid syntax")

	assert.Empty(t, ParseError(nil))
}

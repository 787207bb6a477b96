package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type releaseDatePayload struct {
	Date string `validate:"releasedate"`
}

type pastDatePayload struct {
	Date string `validate:"pastdate"`
}

type notBlankPayload struct {
	Name string `validate:"notblank"`
}

type noSpacesPayload struct {
	Login string `validate:"nospaces"`
}

func TestReleaseDateRule(t *testing.T) {
	assert.Empty(t, ValidateStruct(releaseDatePayload{Date: "1895-12-28"}))
	assert.Empty(t, ValidateStruct(releaseDatePayload{Date: "2001-05-01"}))
	assert.NotEmpty(t, ValidateStruct(releaseDatePayload{Date: "1895-12-27"}))
	assert.NotEmpty(t, ValidateStruct(releaseDatePayload{Date: "not a date"}))
}

func TestPastDateRule(t *testing.T) {
	assert.Empty(t, ValidateStruct(pastDatePayload{Date: "1990-01-01"}))
	assert.NotEmpty(t, ValidateStruct(pastDatePayload{Date: "2990-01-01"}))
}

func TestNotBlankRule(t *testing.T) {
	assert.Empty(t, ValidateStruct(notBlankPayload{Name: "x"}))
	assert.NotEmpty(t, ValidateStruct(notBlankPayload{Name: "   "}))
}

func TestNoSpacesRule(t *testing.T) {
	// digits and letters that double as hex notation are ordinary characters
	assert.Empty(t, ValidateStruct(noSpacesPayload{Login: "max2024"}))
	assert.Empty(t, ValidateStruct(noSpacesPayload{Login: "x2"}))
	assert.NotEmpty(t, ValidateStruct(noSpacesPayload{Login: "two words"}))
	assert.NotEmpty(t, ValidateStruct(noSpacesPayload{Login: " leading"}))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 10))
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
}

func TestParseOptionalInt(t *testing.T) {
	v := ParseOptionalInt("7")
	assert.NotNil(t, v)
	assert.Equal(t, 7, *v)
	assert.Nil(t, ParseOptionalInt(""))
	assert.Nil(t, ParseOptionalInt("abc"))
}

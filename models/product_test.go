package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecsRoundTrip(t *testing.T) {
	stored := FormatSpecs("A, B, C")
	assert.Equal(t, `["A","B","C"]`, stored)
	assert.Equal(t, []string{"A", "B", "C"}, ParseSpecs(stored))
}

func TestFormatSpecsDropsEmptyParts(t *testing.T) {
	assert.Equal(t, `["A","B"]`, FormatSpecs(" A ,, B , "))
	assert.Equal(t, "", FormatSpecs(""))
	assert.Equal(t, "", FormatSpecs(" , , "))
}

func TestParseSpecsEmpty(t *testing.T) {
	assert.Nil(t, ParseSpecs(""))
}

func TestParseSpecsCommaFallback(t *testing.T) {
	// Rows written as plain comma-separated text still parse.
	assert.Equal(t, []string{"A", "B", "C"}, ParseSpecs("A, B, C"))
}

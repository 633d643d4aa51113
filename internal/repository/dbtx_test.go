package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", placeholders(0))
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}

func TestStringArgs(t *testing.T) {
	args := stringArgs([]string{"a", "b"})
	assert.Equal(t, []interface{}{"a", "b"}, args)
}

package intutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(3, 1, 2))
	assert.Equal(t, -4, Min(-4))
	assert.Equal(t, 0, Min(0, 0))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 3, Max(3, 1, 2))
	assert.Equal(t, -4, Max(-4))
	assert.Equal(t, 8, Max(1, 8, 8))
}

package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Bounds_Contains(t *testing.T) {
	b := NewBounds(-1, -1, 1, 1)

	assert.True(t, b.Contains(NewLocation(0.5, -0.5)))
	assert.True(t, b.Contains(NewLocation(1, -1)), "edges are inside")
	assert.False(t, b.Contains(NewLocation(1.5, 0)))
	assert.False(t, b.Contains(NewLocation(0, -2)))
}

func Test_Bounds_String(t *testing.T) {
	assert.Equal(t, "(-1, -1)..(1, 2.5)", NewBounds(-1, -1, 1, 2.5).String())
}

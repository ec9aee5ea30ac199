package entities

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/reglet-dev/locus/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircle(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		radius    float64
		wantName  string
		wantField string
	}{
		{name: "valid", inName: "unit", radius: 1, wantName: "unit"},
		{name: "trims name", inName: "  unit ", radius: 2, wantName: "unit"},
		{name: "empty name", inName: "  ", radius: 1, wantField: "name"},
		{name: "zero radius", inName: "c", radius: 0, wantField: "radius"},
		{name: "negative radius", inName: "c", radius: -1, wantField: "radius"},
		{name: "NaN radius", inName: "c", radius: math.NaN(), wantField: "radius"},
		{name: "infinite radius", inName: "c", radius: math.Inf(1), wantField: "radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCircle(tt.inName, tt.radius)

			if tt.wantField != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				var circleErr *InvalidCircleError
				require.ErrorAs(t, err, &circleErr)
				assert.Equal(t, tt.wantField, circleErr.Field)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name())
			assert.Equal(t, tt.radius, c.Radius())
			assert.False(t, c.ID().IsZero())
			assert.Equal(t, values.Location{}, c.DefaultLocation())
		})
	}
}

func TestCircle_SetDefaultLocation(t *testing.T) {
	c, err := NewCircle("unit", 1)
	require.NoError(t, err)

	require.NoError(t, c.SetDefaultLocation(values.NewLocation(3, 4)))
	assert.Equal(t, values.NewLocation(3, 4), c.DefaultLocation())

	err = c.SetDefaultLocation(values.NewLocation(0, 1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, values.NewLocation(3, 4), c.DefaultLocation())
}

func TestCircle_DefaultLocationIsCopy(t *testing.T) {
	c, err := NewCircle("unit", 1)
	require.NoError(t, err)
	require.NoError(t, c.SetDefaultLocation(values.NewLocation(3, 4)))

	loc := c.DefaultLocation()
	loc.X = 0

	assert.Equal(t, values.NewLocation(3, 4), c.DefaultLocation())
}

func TestCircle_WithRule(t *testing.T) {
	c, err := NewCircle("unit", 1, WithRule(positiveXRule{}))
	require.NoError(t, err)

	assert.ErrorIs(t, c.SetDefaultLocation(values.NewLocation(-3, 4)), ErrInvalidArgument)
	assert.Equal(t, values.Location{}, c.DefaultLocation())
}

func TestCircle_BoundingBox(t *testing.T) {
	c, err := NewCircle("unit", 2)
	require.NoError(t, err)
	require.NoError(t, c.SetDefaultLocation(values.NewLocation(3, 4)))

	lo, hi := c.BoundingBox()
	assert.Equal(t, values.NewLocation(1, 2), lo)
	assert.Equal(t, values.NewLocation(5, 6), hi)
}

func TestCircle_RejectsUnboundedExtent(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		loc    values.Location
	}{
		{name: "overflowing corner", radius: 1e308, loc: values.NewLocation(1e308, 1e308)},
		{name: "overflowing lower corner", radius: 1e308, loc: values.NewLocation(-1e308, 5)},
		{name: "infinite center", radius: 1, loc: values.NewLocation(math.Inf(1), 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCircle("huge", tt.radius)
			require.NoError(t, err)

			err = c.SetDefaultLocation(tt.loc)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), "bounding box")
			assert.Equal(t, values.Location{}, c.DefaultLocation())

			lo, hi := c.BoundingBox()
			assert.True(t, lo.IsFinite())
			assert.True(t, hi.IsFinite())
		})
	}

	c, err := NewCircle("huge", 1e308)
	require.NoError(t, err)
	require.NoError(t, c.SetDefaultLocation(values.NewLocation(5e307, 5e307)))
}

func TestCircle_Draw(t *testing.T) {
	c, err := NewCircle("unit", 10)
	require.NoError(t, err)
	require.NoError(t, c.SetDefaultLocation(values.NewLocation(3, 4)))

	var buf bytes.Buffer
	require.NoError(t, c.Draw(&buf))

	assert.Equal(t, "circle unit r=10 at (4, 5)\n", buf.String())
	assert.Equal(t, values.NewLocation(3, 4), c.DefaultLocation(), "Draw must not move the circle")
}

func TestCircle_ComputeOptimumLocation(t *testing.T) {
	c, err := NewCircle("unit", 4)
	require.NoError(t, err)

	assert.Equal(t, values.NewLocation(2, 2), c.computeOptimumLocation(0.5))
	assert.Equal(t, values.Location{}, c.computeOptimumLocation(0))
}

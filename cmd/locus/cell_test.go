package main

import (
	"bytes"
	"testing"

	"github.com/reglet-dev/locus/internal/domain/entities"
	"github.com/reglet-dev/locus/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCellAction(t *testing.T) {
	tests := []struct {
		name      string
		candidate values.Location
		rule      string
		bounds    []float64
		want      string
		wantErr   bool
	}{
		{
			name:      "accepted",
			candidate: values.NewLocation(3, 4),
			want:      "before: (0, 0)\nafter: (3, 4)\n",
		},
		{
			name:      "zero coordinate rejected",
			candidate: values.NewLocation(0, 5),
			want:      "before: (0, 0)\nrejected: invalid location (0, 5): x and y must both be non-zero\nafter: (0, 0)\n",
			wantErr:   true,
		},
		{
			name:      "rule rejected",
			candidate: values.NewLocation(3, 400),
			rule:      "y < 100",
			want:      "before: (0, 0)\nrejected: invalid location (3, 400): rejected by rule \"y < 100\"\nafter: (0, 0)\n",
			wantErr:   true,
		},
		{
			name:      "bounds rejected",
			candidate: values.NewLocation(30, 4),
			bounds:    []float64{0, 0, 10, 10},
			want:      "before: (0, 0)\nrejected: invalid location (30, 4): outside bounds (0, 0)..(10, 10)\nafter: (0, 0)\n",
			wantErr:   true,
		},
		{
			name:      "bounds and rule",
			candidate: values.NewLocation(3, 4),
			rule:      "x < y",
			bounds:    []float64{0, 0, 10, 10},
			want:      "before: (0, 0)\nafter: (3, 4)\n",
		},
		{
			name:      "rule rejects inside bounds",
			candidate: values.NewLocation(4, 3),
			rule:      "x < y",
			bounds:    []float64{0, 0, 10, 10},
			want:      "before: (0, 0)\nrejected: invalid location (4, 3): rejected by rule \"x < y\"\nafter: (0, 0)\n",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds, err := parseBounds(tt.bounds)
			require.NoError(t, err)

			var buf bytes.Buffer
			err = runCellAction(&buf, tt.candidate, tt.rule, bounds)

			if tt.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidArgument)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunCellAction_BadRule(t *testing.T) {
	err := runCellAction(&bytes.Buffer{}, values.NewLocation(1, 1), "y <", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rule")
}

func TestParseBounds(t *testing.T) {
	b, err := parseBounds(nil)
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = parseBounds([]float64{-1, -2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, values.NewBounds(-1, -2, 3, 4), *b)

	_, err = parseBounds([]float64{1, 2, 3})
	assert.ErrorContains(t, err, "needs 4 numbers")
}

func TestRunCellAction_InvertedBounds(t *testing.T) {
	b := values.NewBounds(10, 10, 0, 0)

	var buf bytes.Buffer
	err := runCellAction(&buf, values.NewLocation(1, 1), "", &b)
	assert.ErrorContains(t, err, "exceeds max")
	assert.Empty(t, buf.String())
}

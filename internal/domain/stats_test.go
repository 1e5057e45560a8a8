package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	got, err := Mean([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = Mean([]float64{9.4, 13.9})
	require.NoError(t, err)
	assert.Equal(t, 11.7, roundTo(got, 1))

	got, err = Mean([]float64{-5})
	require.NoError(t, err)
	assert.Equal(t, -5.0, got)
}

func TestMean_Empty(t *testing.T) {
	_, err := Mean(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Mean([]float64{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestFindMin(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Extreme
	}{
		{"last occurrence wins", []float64{1, 2, 1, 3}, Extreme{Value: 1, Index: 2}},
		{"single", []float64{7}, Extreme{Value: 7, Index: 0}},
		{"unique", []float64{4, -2, 9}, Extreme{Value: -2, Index: 1}},
		{"all equal", []float64{5, 5, 5}, Extreme{Value: 5, Index: 2}},
		{"minimum at end", []float64{3, 2, 1}, Extreme{Value: 1, Index: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMin(tt.values)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFindMax(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Extreme
	}{
		{"last occurrence wins", []float64{1, 3, 2, 3}, Extreme{Value: 3, Index: 3}},
		{"single", []float64{7}, Extreme{Value: 7, Index: 0}},
		{"maximum first", []float64{9, 1, 2}, Extreme{Value: 9, Index: 0}},
		{"all equal", []float64{5, 5}, Extreme{Value: 5, Index: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMax(tt.values)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFindExtreme_Empty(t *testing.T) {
	got, ok := FindMin(nil)
	assert.False(t, ok)
	assert.Equal(t, Extreme{}, got)

	got, ok = FindMax([]float64{})
	assert.False(t, ok)
	assert.Equal(t, Extreme{}, got)
}

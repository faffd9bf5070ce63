package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFontCachesBySize(t *testing.T) {
	a, err := LoadFont(12)
	require.NoError(t, err)
	b, err := LoadFont(12)
	require.NoError(t, err)
	c, err := LoadFont(24)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 24.0, c.Size)
	assert.Same(t, a.Source, c.Source)
}

func TestMeasureText(t *testing.T) {
	face, err := LoadFont(12)
	require.NoError(t, err)
	w1, h1 := MeasureText("1", face)
	w2, _ := MeasureText("1234567890", face)

	assert.Greater(t, w1, 0.0)
	assert.Greater(t, h1, 0.0)
	assert.Greater(t, w2, w1)

	w, h := MeasureText("x", nil)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

package overlay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_UniformDownscale(t *testing.T) {
	m := NewMapper(nil)

	dets := []Detection{
		{Class: "person", Score: 0.9, Box: Rect{X: 100, Y: 100, Width: 50, Height: 50}},
	}
	out, err := m.Map(dets, Size{Width: 640, Height: 480}, Rect{X: 0, Y: 0, Width: 320, Height: 240})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, Rect{X: 50, Y: 50, Width: 25, Height: 25}, out[0].Box)
}

func TestMap_VerticalLetterboxOffset(t *testing.T) {
	m := NewMapper(nil)

	dets := []Detection{
		{Class: "car", Score: 0.8, Box: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
	}
	out, err := m.Map(dets, Size{Width: 1920, Height: 1080}, Rect{X: 0, Y: 75, Width: 800, Height: 450})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, Rect{X: 0, Y: 75, Width: 800, Height: 450}, out[0].Box)
}

func TestMap_NonUniformScale(t *testing.T) {
	// Aspect ratios deliberately mismatched: scaleX != scaleY must both apply.
	m := NewMapper(nil)

	dets := []Detection{
		{Class: "dog", Score: 0.5, Box: Rect{X: 10, Y: 20, Width: 100, Height: 200}},
	}
	out, err := m.Map(dets, Size{Width: 1000, Height: 500}, Rect{X: 5, Y: 10, Width: 500, Height: 100})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.InDelta(t, 10.0*0.5+5, out[0].Box.X, 1e-9)
	assert.InDelta(t, 20.0*0.2+10, out[0].Box.Y, 1e-9)
	assert.InDelta(t, 50.0, out[0].Box.Width, 1e-9)
	assert.InDelta(t, 40.0, out[0].Box.Height, 1e-9)
}

func TestMap_ZeroIntrinsicSizeNotReady(t *testing.T) {
	m := NewMapper(nil)

	dets := []Detection{{Class: "person", Score: 0.9, Box: Rect{X: 1, Y: 1, Width: 1, Height: 1}}}
	out, err := m.Map(dets, Size{}, Rect{Width: 320, Height: 240})
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Nil(t, out)

	// Partial readiness is still not ready.
	_, err = m.Map(dets, Size{Width: 640}, Rect{Width: 320, Height: 240})
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestMap_NeverEmitsNaNOrInf(t *testing.T) {
	m := NewMapper(nil)

	out, err := m.Map(
		[]Detection{{Class: "person", Score: 1, Box: Rect{X: 5, Y: 5, Width: 10, Height: 10}}},
		Size{Width: 640, Height: 480},
		Rect{Width: 320, Height: 240},
	)
	require.NoError(t, err)
	for _, inst := range out {
		for _, v := range []float64{inst.Box.X, inst.Box.Y, inst.Box.Width, inst.Box.Height, inst.LabelX, inst.LabelY} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	}
}

func TestMap_ClassAllowList(t *testing.T) {
	m := NewMapper([]string{"person"})

	dets := []Detection{
		{Class: "person", Score: 0.9, Box: Rect{X: 0, Y: 100, Width: 10, Height: 10}},
		{Class: "kite", Score: 0.99, Box: Rect{X: 0, Y: 100, Width: 10, Height: 10}},
		{Class: "car", Score: 0.99, Box: Rect{X: 0, Y: 100, Width: 10, Height: 10}},
	}
	out, err := m.Map(dets, Size{Width: 100, Height: 100}, Rect{Width: 100, Height: 100})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "person", out[0].Class)
}

func TestMap_DefaultAllowListCoversOriginalClasses(t *testing.T) {
	m := NewMapper(nil)

	dets := make([]Detection, 0, len(DefaultClasses))
	for _, c := range DefaultClasses {
		dets = append(dets, Detection{Class: c, Score: 0.5, Box: Rect{X: 0, Y: 50, Width: 1, Height: 1}})
	}
	out, err := m.Map(dets, Size{Width: 100, Height: 100}, Rect{Width: 100, Height: 100})
	require.NoError(t, err)
	assert.Len(t, out, len(DefaultClasses))
}

func TestMap_LabelFlipsNearTopEdge(t *testing.T) {
	m := NewMapper(nil)

	dets := []Detection{
		{Class: "person", Score: 0.9, Box: Rect{X: 10, Y: 5, Width: 20, Height: 20}},   // near top
		{Class: "person", Score: 0.9, Box: Rect{X: 10, Y: 200, Width: 20, Height: 20}}, // well below
	}
	out, err := m.Map(dets, Size{Width: 400, Height: 400}, Rect{Width: 400, Height: 400})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.True(t, out[0].LabelBelow)
	assert.Equal(t, out[0].Box.Y, out[0].LabelY)

	assert.False(t, out[1].LabelBelow)
	assert.Equal(t, out[1].Box.Y-LabelMargin, out[1].LabelY)
	assert.Equal(t, out[1].Box.X, out[1].LabelX)
}

func TestMap_LabelFlipAccountsForOffset(t *testing.T) {
	// A box at intrinsic y=0 under letterboxing sits at the content offset,
	// which can already clear the margin.
	m := NewMapper(nil)

	dets := []Detection{{Class: "person", Score: 0.9, Box: Rect{X: 0, Y: 0, Width: 10, Height: 10}}}
	out, err := m.Map(dets, Size{Width: 100, Height: 100}, Rect{X: 0, Y: 75, Width: 100, Height: 100})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.False(t, out[0].LabelBelow)
}

func TestMap_ZeroAreaBoxEmitsDegenerateRect(t *testing.T) {
	m := NewMapper(nil)

	dets := []Detection{{Class: "cat", Score: 0.4, Box: Rect{X: 40, Y: 60, Width: 0, Height: 0}}}
	out, err := m.Map(dets, Size{Width: 100, Height: 100}, Rect{Width: 200, Height: 200})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, Rect{X: 80, Y: 120, Width: 0, Height: 0}, out[0].Box)
}

func TestMap_EmptyDetections(t *testing.T) {
	m := NewMapper(nil)

	out, err := m.Map(nil, Size{Width: 100, Height: 100}, Rect{Width: 100, Height: 100})
	require.NoError(t, err)
	assert.Empty(t, out)
}

package svgprogress

import (
	"bytes"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePNG(t *testing.T) {
	view := render(t, Props{Size: 100, Width: 10, Fill: 50, BackgroundColor: "#3d5875"})

	var buf bytes.Buffer
	require.NoError(t, view.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	// On the ring.
	_, _, _, a := img.At(5, 50).RGBA()
	assert.NotZero(t, a)

	// Inside and outside the ring nothing is drawn.
	_, _, _, a = img.At(50, 50).RGBA()
	assert.Zero(t, a)
	_, _, _, a = img.At(1, 1).RGBA()
	assert.Zero(t, a)
}

func TestEncodePNGParsedDocument(t *testing.T) {
	doc, err := ParseSvg(`<svg width="40" height="30"><path d="M 5 15 L 35 15" stroke="red" stroke-width="4"/></svg>`, "line", 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	r, _, b, a := img.At(20, 15).RGBA()
	assert.NotZero(t, a)
	assert.Greater(t, r, b)
}

func TestEncodePNGCurve(t *testing.T) {
	doc, err := ParseSvg(`<svg width="40" height="20"><path d="M 2 10 C 10 10 30 10 38 10" stroke="blue" stroke-width="4"/></svg>`, "curve", 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	_, _, b, a := img.At(20, 10).RGBA()
	assert.NotZero(t, a)
	assert.NotZero(t, b)
	_, _, _, a = img.At(20, 2).RGBA()
	assert.Zero(t, a)
}

func TestEncodePNGConcurrent(t *testing.T) {
	view := render(t, Props{Size: 100, Width: 10, Fill: 60, BackgroundColor: "#3d5875"})
	view.Background.Style = "stroke-width: 12px"

	want, err := Arcs(view.Svg)
	require.NoError(t, err)
	require.Len(t, want, 2)
	assert.Equal(t, 12.0, want[0].StrokeWidth)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			assert.NoError(t, view.EncodePNG(&buf))
			assert.NotZero(t, buf.Len())
		}()
		go func() {
			defer wg.Done()
			arcs, err := Arcs(view.Svg)
			assert.NoError(t, err)
			assert.Equal(t, want, arcs)
		}()
	}
	wg.Wait()

	// Reading the document leaves it as built.
	assert.Equal(t, 10.0, view.Background.StrokeWidth)
	assert.Nil(t, view.Group.Parent)
}

func TestEncodePNGInvalidSurface(t *testing.T) {
	view := render(t, Props{Size: 0, Width: 10, Fill: 50})
	var buf bytes.Buffer
	assert.Error(t, view.EncodePNG(&buf))
}

func TestParseColor(t *testing.T) {
	c, ok := parseColor("#ff0000")
	require.True(t, ok)
	assert.InDelta(t, 1, c.R, 1e-9)
	assert.InDelta(t, 1, c.A, 1e-9)

	c, ok = parseColor("Black")
	require.True(t, ok)
	assert.InDelta(t, 0, c.R, 1e-9)
	assert.InDelta(t, 1, c.A, 1e-9)

	c, ok = parseColor("transparent")
	require.True(t, ok)
	assert.Zero(t, c.A)

	_, ok = parseColor("url(#grad)")
	assert.False(t, ok)
}

func TestParseLength(t *testing.T) {
	assert.Equal(t, 0.5, parseLength("50%", 0))
	assert.Equal(t, 1.0, parseLength("1", 0))
	assert.Equal(t, 12.0, parseLength("12px", 0))
	assert.Equal(t, 7.0, parseLength("", 7))
	assert.Equal(t, 7.0, parseLength("wide", 7))
}

func TestGradientRef(t *testing.T) {
	id, ok := gradientRef("url(#grad)")
	assert.True(t, ok)
	assert.Equal(t, "grad", id)

	_, ok = gradientRef("#grad")
	assert.False(t, ok)
}

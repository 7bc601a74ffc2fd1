package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/spatial"
)

type drawCall struct {
	quad    spatial.Quad
	fill    color.Color
	outline color.Color
}

type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawQuad(q spatial.Quad, fill, outline color.Color) {
	r.calls = append(r.calls, drawCall{q, fill, outline})
}

func TestDrawNet_SolvedLayout(t *testing.T) {
	rec := &recorder{}
	r := New(WithNetSquare(10), WithNetCenter(ms2.Vec{X: 45, Y: 60}))
	r.DrawNet(rec, cube.New(), false)

	require.Len(t, rec.calls, 54)
	for i, call := range rec.calls {
		assert.Equal(t, DefaultPalette[i/9], call.fill, "facelet %d", i)
		assert.Nil(t, call.outline)
	}
	// Face 0 starts at the top-left corner of the 9x12 net.
	assert.Equal(t, ms2.Vec{X: 0, Y: 0}, rec.calls[0].quad[0])
	// Face 5 facelet 8 ends at the bottom-right corner.
	assert.Equal(t, ms2.Vec{X: 90, Y: 120}, rec.calls[53].quad[2])
	// Face 2 sits under face 1.
	assert.Equal(t, ms2.Vec{X: 30, Y: 30}, rec.calls[18].quad[0])
}

func TestDrawNet_ColorsFollowState(t *testing.T) {
	c := cube.New()
	require.NoError(t, c.ApplyNotation("R"))

	rec := &recorder{}
	New().DrawNet(rec, c, true)
	require.Len(t, rec.calls, 54)
	assert.Equal(t, DefaultPalette[cube.Blue], rec.calls[2].fill)
	assert.Equal(t, DefaultPalette[cube.White], rec.calls[18].fill)
	assert.Equal(t, Black, rec.calls[0].outline)
}

func TestDrawSolid(t *testing.T) {
	c := cube.New()
	require.NoError(t, c.ApplyNotation("F U"))
	m := spatial.New()
	m.Rotate(spatial.AxisX, 0.4)
	m.Rotate(spatial.AxisY, -0.6)

	rec := &recorder{}
	r := New(WithOutline(color.RGBA{R: 1, A: 255}))
	require.NoError(t, r.DrawSolid(rec, c, m, true))
	require.Len(t, rec.calls, 27)

	scene, err := m.Scene()
	require.NoError(t, err)
	for i, pf := range scene {
		for k := 0; k < 9; k++ {
			call := rec.calls[i*9+k]
			assert.Equal(t, DefaultPalette[c.Facelet(pf.Face*9+k)], call.fill)
			assert.Equal(t, pf.Quads[k], call.quad)
			assert.Equal(t, color.RGBA{R: 1, A: 255}, call.outline)
		}
	}
}

func TestDrawSolid_DegenerateSkipsFrame(t *testing.T) {
	m := spatial.New(spatial.WithCenter(ms3.Vec{Z: 10}))
	rec := &recorder{}
	err := New().Draw(rec, cube.New(), m, ModeSolid, false)
	assert.ErrorIs(t, err, spatial.ErrDegenerateProjection)
	assert.Empty(t, rec.calls)
}

func TestDraw_NetIgnoresGeometry(t *testing.T) {
	m := spatial.New(spatial.WithCenter(ms3.Vec{Z: 10}))
	rec := &recorder{}
	require.NoError(t, New().Draw(rec, cube.New(), m, ModeNet, false))
	assert.Len(t, rec.calls, 54)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"net": ModeNet, "2d": ModeNet, "Solid": ModeSolid, "3d": ModeSolid} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotEqual(t, "?", got.String())
	}
	_, err := ParseMode("wire")
	assert.Error(t, err)
}

func TestCanvasFillAndOutline(t *testing.T) {
	cv := NewCanvas(100, 100, 4)
	cv.Clear(Lilac)
	q := spatial.Quad{{X: 20, Y: 20}, {X: 80, Y: 20}, {X: 80, Y: 80}, {X: 20, Y: 80}}
	red := DefaultPalette[cube.Red]
	cv.DrawQuad(q, red, Black)

	img := cv.Image()
	assert.Equal(t, red, img.RGBAAt(50, 50))
	assert.Equal(t, Lilac, img.RGBAAt(5, 5))
	assert.Equal(t, Black, img.RGBAAt(50, 20))
	assert.Equal(t, Black, img.RGBAAt(20, 50))

	cv.DrawQuad(q, DefaultPalette[cube.Green], nil)
	assert.Equal(t, DefaultPalette[cube.Green], img.RGBAAt(50, 21))
}

func TestCanvasClipsOffscreen(t *testing.T) {
	cv := NewCanvas(10, 10, 1)
	cv.Clear(Black)
	q := spatial.Quad{{X: -50, Y: -50}, {X: 60, Y: -50}, {X: 60, Y: 60}, {X: -50, Y: 60}}
	cv.DrawQuad(q, Lilac, nil)
	assert.Equal(t, Lilac, cv.Image().RGBAAt(0, 0))
	assert.Equal(t, Lilac, cv.Image().RGBAAt(9, 9))
}

func TestCanvasFillStaysInBounds(t *testing.T) {
	cv := NewCanvas(100, 100, 1)
	cv.Clear(Lilac)
	blue := DefaultPalette[cube.Blue]
	cv.DrawQuad(spatial.Quad{{X: 60, Y: 70}, {X: 70, Y: 70}, {X: 70, Y: 80}, {X: 60, Y: 80}}, blue, nil)

	img := cv.Image()
	assert.Equal(t, blue, img.RGBAAt(60, 70))
	assert.Equal(t, blue, img.RGBAAt(69, 79))
	assert.Equal(t, Lilac, img.RGBAAt(59, 75))
	assert.Equal(t, Lilac, img.RGBAAt(70, 75))
	assert.Equal(t, Lilac, img.RGBAAt(65, 69))
	assert.Equal(t, Lilac, img.RGBAAt(65, 80))
}

func TestPixelBounds(t *testing.T) {
	pts := []ms2.Vec{{X: 10.5, Y: 3.2}, {X: -1.5, Y: 7}, {X: 4, Y: 12.01}}
	assert.Equal(t, image.Rect(-2, 3, 11, 13), pixelBounds(pts))
}

func TestTerminalEncode(t *testing.T) {
	cv := NewCanvas(6, 5, 0)
	cv.Clear(Lilac)
	out := NewTerminal().Encode(cv.Image())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 6, strings.Count(l, halfBlock))
	}
}

func TestPaletteHex(t *testing.T) {
	assert.Equal(t, "#ff6600", Hex(DefaultPalette[cube.Orange]))
	c, err := ParseHex("#a09ed6")
	require.NoError(t, err)
	assert.Equal(t, Lilac, c)
	_, err = ParseHex("12")
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	cv := NewCanvas(8, 8, 0)
	cv.Clear(Lilac)
	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	require.NoError(t, WritePNG(path, cv.Image()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	r, g, b, _ := img.At(3, 3).RGBA()
	assert.Equal(t, [3]uint32{160, 158, 214}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

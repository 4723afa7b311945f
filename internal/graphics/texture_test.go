package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var stripColors = []color.RGBA{
	{0x80, 0x80, 0x80, 0xFF},
	{0x8B, 0x45, 0x13, 0xFF},
	{0x00, 0xFF, 0x00, 0xFF},
	{0x22, 0x8B, 0x22, 0xFF},
}

// strip returns a tileW*len(stripColors) x h image with one solid color per tile.
func strip(tileW, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tileW*len(stripColors), h))
	for x := 0; x < img.Bounds().Dx(); x++ {
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, stripColors[x/tileW])
		}
	}
	return img
}

func assertTiles(t *testing.T, tiles []*image.RGBA, size int) {
	t.Helper()
	require.Len(t, tiles, len(stripColors))
	for i, tile := range tiles {
		assert.Equal(t, image.Rect(0, 0, size, size), tile.Bounds())
		assert.Equalf(t, stripColors[i], tile.RGBAAt(0, 0), "tile %d", i)
		assert.Equalf(t, stripColors[i], tile.RGBAAt(size-1, size-1), "tile %d", i)
	}
}

func TestDecodeTileStripPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, strip(16, 16)))

	tiles, err := DecodeTileStrip(&buf, len(stripColors))
	require.NoError(t, err)
	assertTiles(t, tiles, 16)
}

func TestDecodeTileStripBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, strip(8, 8)))

	tiles, err := DecodeTileStrip(&buf, len(stripColors))
	require.NoError(t, err)
	assertTiles(t, tiles, 8)
}

func TestDecodeTileStripScalesWideTiles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, strip(32, 16)))

	tiles, err := DecodeTileStrip(&buf, len(stripColors))
	require.NoError(t, err)
	assertTiles(t, tiles, 16)
}

func TestDecodeTileStripErrors(t *testing.T) {
	_, err := DecodeTileStrip(bytes.NewReader([]byte("not an image")), 4)
	assert.ErrorContains(t, err, "decode image")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	_, err = DecodeTileStrip(&buf, 4)
	assert.ErrorContains(t, err, "too small")

	_, err = DecodeTileStrip(&buf, 0)
	assert.Error(t, err)
}

func TestLoadTileStrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, strip(4, 4)))
	require.NoError(t, f.Close())

	tiles, err := LoadTileStrip(path, len(stripColors))
	require.NoError(t, err)
	assertTiles(t, tiles, 4)

	_, err = LoadTileStrip(filepath.Join(t.TempDir(), "missing.png"), 4)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTextureWithoutPathKeepsFlatColors(t *testing.T) {
	r := &Renderer{textured: true}
	assert.False(t, r.LoadTexture(""))
	assert.False(t, r.textured)
}

func TestLoadTextureMissingFileKeepsFlatColors(t *testing.T) {
	r := &Renderer{}
	assert.False(t, r.LoadTexture(filepath.Join(t.TempDir(), "missing.png")))
	assert.False(t, r.textured)
}

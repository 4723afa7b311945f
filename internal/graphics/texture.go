package graphics

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// LoadTileStrip reads a horizontal strip of square block tiles from path.
func LoadTileStrip(path string, tiles int) ([]*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	out, err := DecodeTileStrip(f, tiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// DecodeTileStrip splits an image into tiles equal-width columns and scales
// each one to a square of the image height, so strips with non-square tiles
// still produce uniform texture array layers.
func DecodeTileStrip(r io.Reader, tiles int) ([]*image.RGBA, error) {
	if tiles <= 0 {
		return nil, fmt.Errorf("tile count %d must be positive", tiles)
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	size := b.Dy()
	if size == 0 || b.Dx() < tiles {
		return nil, fmt.Errorf("%s image %dx%d too small for %d tiles", format, b.Dx(), b.Dy(), tiles)
	}

	out := make([]*image.RGBA, tiles)
	for i := range out {
		src := image.Rect(b.Min.X+i*b.Dx()/tiles, b.Min.Y, b.Min.X+(i+1)*b.Dx()/tiles, b.Max.Y)
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
		out[i] = dst
	}
	return out, nil
}

// UploadTileArray uploads equally sized tiles into a GL_TEXTURE_2D_ARRAY, one layer per tile.
func UploadTileArray(layers []*image.RGBA) (uint32, error) {
	if len(layers) == 0 {
		return 0, fmt.Errorf("no texture layers")
	}
	width := layers[0].Bounds().Dx()
	height := layers[0].Bounds().Dy()
	for i, l := range layers {
		if l.Bounds().Dx() != width || l.Bounds().Dy() != height {
			return 0, fmt.Errorf("layer %d is %v, want %dx%d", i, l.Bounds().Size(), width, height)
		}
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, texture)

	gl.TexImage3D(
		gl.TEXTURE_2D_ARRAY,
		0,
		gl.RGBA8,
		int32(width),
		int32(height),
		int32(len(layers)),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		nil,
	)

	for i, img := range layers {
		gl.TexSubImage3D(
			gl.TEXTURE_2D_ARRAY,
			0,
			0, 0, int32(i),
			int32(width),
			int32(height),
			1,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix),
		)
	}

	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D_ARRAY)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	return texture, nil
}

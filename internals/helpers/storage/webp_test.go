package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyPNG builds an incompressible image so TargetKB forces a downscale.
func noisyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func flatPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 120, B: 200, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestConvertToWebPKeepsDimensionsWithoutTarget(t *testing.T) {
	raw := flatPNG(t, 300, 200)

	out, w, h, err := ConvertToWebPWithOptions(raw, "cover.png", WebPOptions{
		Quality: 80,
	})
	require.NoError(t, err)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)

	ew, eh, _, err := webp.GetInfo(out)
	require.NoError(t, err)
	assert.Equal(t, ew, w)
	assert.Equal(t, eh, h)
}

func TestConvertToWebPReportsDownscaledDimensions(t *testing.T) {
	raw := noisyPNG(t, 1000, 750)

	// random pixels at q45 won't fit 10KB, so the encoder has to shrink
	out, w, h, err := ConvertToWebPWithOptions(raw, "photo.png", WebPOptions{
		TargetKB:    10,
		Quality:     80,
		MinQ:        45,
		MaxQ:        85,
		ToleranceKB: 2,
		MinW:        100,
		MinH:        100,
		ScaleStep:   0.85,
	})
	require.NoError(t, err)

	ew, eh, _, err := webp.GetInfo(out)
	require.NoError(t, err)
	assert.Equal(t, ew, w, "reported width must match the encoded bytes")
	assert.Equal(t, eh, h, "reported height must match the encoded bytes")
	assert.Less(t, w, 1000)
	assert.Less(t, h, 750)
}

func TestConvertToWebPRejectsUnsupportedInput(t *testing.T) {
	_, _, _, err := ConvertToWebPWithOptions([]byte("not an image at all"), "notes.txt", WebPOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestThumbnailFitsRequestedBounds(t *testing.T) {
	raw := flatPNG(t, 800, 600)

	thumb, err := Thumbnail(raw, "cover.png", 200, 200)
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)
	b := img.Bounds()
	assert.LessOrEqual(t, b.Dx(), 200)
	assert.LessOrEqual(t, b.Dy(), 200)
	assert.Equal(t, 200, b.Dx())
	assert.Equal(t, 150, b.Dy(), "aspect ratio is preserved")
}

func TestThumbnailRejectsUnsupportedInput(t *testing.T) {
	_, err := Thumbnail([]byte("plain text"), "notes.txt", 200, 200)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

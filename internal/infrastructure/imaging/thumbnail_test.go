package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngDePrueba genera un PNG sólido de las dimensiones dadas.
func pngDePrueba(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// decodificada devuelve la miniatura embebida en el data URI.
func decodificada(t *testing.T, ref string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	require.True(t, strings.HasPrefix(ref, prefix))
	raw, err := base64.StdEncoding.DecodeString(ref[len(prefix):])
	require.NoError(t, err)
	img, format, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	return img
}

func TestInlineThumbnail_ReduceAlLadoMayor(t *testing.T) {
	strategy := NewInlineThumbnail(300)
	ref, err := strategy.Resolve(context.Background(), pngDePrueba(t, 800, 600), "X1")
	require.NoError(t, err)

	img := decodificada(t, ref)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 225, img.Bounds().Dy())
}

func TestInlineThumbnail_Vertical(t *testing.T) {
	strategy := NewInlineThumbnail(300)
	ref, err := strategy.Resolve(context.Background(), pngDePrueba(t, 400, 1000), "X1")
	require.NoError(t, err)

	img := decodificada(t, ref)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

// una imagen que ya cabe no se agranda.
func TestInlineThumbnail_NoAgranda(t *testing.T) {
	strategy := NewInlineThumbnail(300)
	ref, err := strategy.Resolve(context.Background(), pngDePrueba(t, 120, 80), "X1")
	require.NoError(t, err)

	img := decodificada(t, ref)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestInlineThumbnail_BytesInvalidos(t *testing.T) {
	strategy := NewInlineThumbnail(300)
	_, err := strategy.Resolve(context.Background(), []byte("no es una imagen"), "X1")
	require.Error(t, err)
}

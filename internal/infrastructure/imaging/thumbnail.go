// Package imaging implementa la estrategia de foto inline: una miniatura
// acotada re-codificada como data URI, embebida directamente en la celda
// de foto. Evita depender de la disponibilidad y la cuota del blob
// store, a cambio de celdas más pesadas.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// InlineThumbnail implementa kardex.PhotoStrategy.
type InlineThumbnail struct {
	maxEdge int // lado mayor permitido, en px
	quality int // calidad JPEG de la re-codificación
}

// NewInlineThumbnail construye la estrategia; maxEdge <= 0 usa 300.
func NewInlineThumbnail(maxEdge int) *InlineThumbnail {
	if maxEdge <= 0 {
		maxEdge = 300
	}
	return &InlineThumbnail{maxEdge: maxEdge, quality: 75}
}

// Resolve decodifica la imagen, la reduce a maxEdge en su lado mayor y
// la devuelve como data URI JPEG en base64.
func (t *InlineThumbnail) Resolve(_ context.Context, data []byte, _ string) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decodificar imagen: %w", err)
	}

	dst := t.scale(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: t.quality}); err != nil {
		return "", fmt.Errorf("codificar miniatura: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// scale reduce la imagen manteniendo proporción; si ya cabe, la deja igual.
func (t *InlineThumbnail) scale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	edge := w
	if h > edge {
		edge = h
	}
	if edge <= t.maxEdge {
		return src
	}

	var nw, nh int
	if w >= h {
		nw = t.maxEdge
		nh = h * t.maxEdge / w
	} else {
		nh = t.maxEdge
		nw = w * t.maxEdge / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

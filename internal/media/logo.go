// Package media normalises uploaded images.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	LogoMaxSide     = 512
	LogoContentType = "image/webp"
	logoQuality     = 85
	maxUploadBytes  = 5 << 20
)

var ErrUnsupportedImage = errors.New("unsupported image: only png and jpeg are accepted")

// NormalizeLogo decodes a PNG or JPEG, shrinks it to fit LogoMaxSide and
// encodes it as webp.
func NormalizeLogo(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > maxUploadBytes {
		return nil, fmt.Errorf("image larger than %d bytes", maxUploadBytes)
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupportedImage
	}
	if format != "png" && format != "jpeg" {
		return nil, ErrUnsupportedImage
	}

	img := fit(src, LogoMaxSide)

	var out bytes.Buffer
	if err := webp.Encode(&out, img, &webp.Options{Quality: logoQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return out.Bytes(), nil
}

// fit scales src down so its longest side is at most side.
func fit(src image.Image, side int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= side && h <= side {
		return src
	}

	if w >= h {
		h = h * side / w
		w = side
	} else {
		w = w * side / h
		h = side
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

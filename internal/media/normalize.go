// Package media turns uploaded pictures into bounded WebP files and stores
// them on local disk or in an S3 bucket.
package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/VanderIG123/stylists-api/internal/httperr"
)

const (
	MaxUploadBytes = 5 << 20
	MaxEdge        = 1600
	ContentType    = "image/webp"
	webpQuality    = 82
)

var ErrInvalidImage = httperr.Validation("invalid_image", "Upload a JPEG, PNG or WebP image of at most 5 MiB.")

// Normalize decodes data, shrinks it so the longer side is at most maxEdge
// pixels and re-encodes it as lossy WebP.
func Normalize(data []byte, maxEdge int) ([]byte, error) {
	if len(data) == 0 || len(data) > MaxUploadBytes {
		return nil, ErrInvalidImage
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImage
	}

	img := fit(src, maxEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxEdge <= 0 || (w <= maxEdge && h <= maxEdge) {
		return src
	}

	if w >= h {
		h = max(1, h*maxEdge/w)
		w = maxEdge
	} else {
		w = max(1, w*maxEdge/h)
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// Package imaging normalises item photos before they are stored.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// Defaults used by NewProcessor when a setting is zero.
const (
	DefaultMaxDimension = 1024
	DefaultJPEGQuality  = 85
	DefaultMaxBytes     = 5 << 20
)

// ErrUnsupportedFormat is returned for anything that is not a JPEG or PNG.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Photo is a processed image ready to store.
type Photo struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

// Processor downscales and re-encodes uploaded photos.
type Processor struct {
	MaxDimension int
	JPEGQuality  int
	MaxBytes     int64
}

// NewProcessor returns a processor limiting photos to maxDim pixels on the
// longer side.
func NewProcessor(maxDim int) *Processor {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	return &Processor{
		MaxDimension: maxDim,
		JPEGQuality:  DefaultJPEGQuality,
		MaxBytes:     DefaultMaxBytes,
	}
}

// Process sniffs the format from the bytes (client headers are not
// trusted), downscales if needed and always re-encodes as JPEG.
func (p *Processor) Process(r io.Reader) (*Photo, error) {
	data, err := io.ReadAll(io.LimitReader(r, p.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}
	if int64(len(data)) > p.MaxBytes {
		return nil, fmt.Errorf("image larger than %d bytes", p.MaxBytes)
	}

	if detected := http.DetectContentType(data); !allowedMIME[detected] {
		return nil, fmt.Errorf("%w: %s (only JPEG and PNG accepted)", ErrUnsupportedFormat, detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = fit(img, p.MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	b := img.Bounds()
	return &Photo{
		Data:   buf.Bytes(),
		MIME:   "image/jpeg",
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// fit scales img down with Catmull-Rom so neither side exceeds maxDim,
// keeping the aspect ratio. Smaller images are returned unchanged.
func fit(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := maxDim, maxDim
	if w > h {
		newH = max(1, h*maxDim/w)
	} else {
		newW = max(1, w*maxDim/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

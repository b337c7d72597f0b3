// Package imaging converts between grayscale images and intensity
// matrices. A decoded image becomes a width x height matrix with
// At(x, y) holding the luminance of pixel (x, y) in [0, 1], which is the
// orientation the analysis layers expect.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	_ "image/gif"
	_ "image/jpeg"

	"gonum.org/v1/gonum/mat"
)

// ErrDecode is returned when the input cannot be decoded as an image.
var ErrDecode = errors.New("imaging: cannot decode image")

// Decode reads a PNG, JPEG or GIF image and returns its grayscale
// intensity matrix. Rows index pixel columns (x), columns index pixel
// rows (y).
func Decode(r io.Reader) (*mat.Dense, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	m := mat.NewDense(w, h, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r16, g16, b16, _ := px.RGBA()
			// Rec. 601 luma on the 16-bit channel values.
			luma := (0.299*float64(r16) + 0.587*float64(g16) + 0.114*float64(b16)) / 0xffff
			m.Set(x, y, luma)
		}
	}
	return m, nil
}

// Image renders an intensity matrix as an 8-bit grayscale image.
// Reconstructions can overshoot [0, 1], so values are clamped first.
func Image(m *mat.Dense) *image.Gray {
	w, h := m.Dims()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := m.At(x, y)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return img
}

// Encode writes the matrix as a PNG image.
func Encode(w io.Writer, m *mat.Dense) error {
	if err := png.Encode(w, Image(m)); err != nil {
		return fmt.Errorf("imaging: encode png: %w", err)
	}
	return nil
}

package image

import (
	"bufio"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultJPEGQuality ...
const DefaultJPEGQuality = jpeg.DefaultQuality // 75

// Quality ...
type Quality uint8

// WriteOption ...
type WriteOption struct {
	Format  Format
	Quality Quality
}

// Decode reads an image, the codec is chosen by content
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(bufio.NewReader(r))
}

// Open decodes the image file at name
func Open(name string) (image.Image, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes m in the format of opt
func Encode(w io.Writer, m image.Image, opt WriteOption) error {
	switch opt.Format {
	case FormatJPEG:
		q := opt.Quality
		if q == 0 {
			q = DefaultJPEGQuality
		}
		return jpeg.Encode(w, m, &jpeg.Options{Quality: int(q)})
	case FormatPNG:
		return png.Encode(w, m)
	}
	return ErrInvalidFormat
}

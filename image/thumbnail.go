package image

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/nfnt/resize"

	"github.com/go-imsto/imresize/storage/hash"
)

// Filter is the resampling kernel, a triangle filter
var Filter = resize.Bilinear

// ResizeOption ...
type ResizeOption struct {
	Width, Height uint
	WriteOption
}

func (opt ResizeOption) String() string {
	return fmt.Sprintf("%dx%d %s q%d", opt.Width, opt.Height, opt.Format, opt.Quality)
}

// Validate ...
func (opt ResizeOption) Validate() error {
	if opt.Width == 0 || opt.Height == 0 {
		return ErrInvalidSize
	}
	if opt.Format == FormatNone {
		return ErrInvalidFormat
	}
	return nil
}

// ResizeImage scales img to exactly width x height, the aspect ratio is not kept
func ResizeImage(img image.Image, width, height uint) image.Image {
	return resize.Resize(width, height, img, Filter)
}

func encodeResized(w io.Writer, im image.Image, opt ResizeOption) (*Attr, error) {
	m := ResizeImage(im, opt.Width, opt.Height)

	hw := hash.New()
	if err := Encode(io.MultiWriter(w, hw), m, opt.WriteOption); err != nil {
		return nil, err
	}

	mb := m.Bounds()
	attr := NewAttr(uint(mb.Dx()), uint(mb.Dy()), opt.Format)
	if opt.Format == FormatJPEG {
		attr.Quality = opt.Quality
		if attr.Quality == 0 {
			attr.Quality = DefaultJPEGQuality
		}
	}
	attr.Size = Size(hw.Len())
	attr.Hash = hw.String()
	return attr, nil
}

// ResizeFile resizes src into dest. dest is created only after src is decoded,
// its directory must exist.
func ResizeFile(src, dest string, opt ResizeOption) (*Attr, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	im, format, err := Open(src)
	if err != nil {
		logger().Debugw("open fail", "src", src, "err", err)
		return nil, err
	}
	logger().Debugw("decoded", "src", src, "format", format, "bounds", im.Bounds(), "opt", opt)

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(0644))
	if err != nil {
		return nil, err
	}

	attr, err := encodeResized(out, im, opt)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	attr.Name = dest
	return attr, nil
}

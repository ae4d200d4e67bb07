package batch

import (
	"fmt"
	"path/filepath"

	cimg "github.com/go-imsto/imresize/image"
)

// Option ...
type Option struct {
	Length  uint // output width in pixels
	Width   uint // output height in pixels
	Quality cimg.Quality
}

func (opt Option) resizeOption(f cimg.Format) cimg.ResizeOption {
	return cimg.ResizeOption{
		Width:  opt.Length,
		Height: opt.Width,
		WriteOption: cimg.WriteOption{
			Format:  f,
			Quality: opt.Quality,
		},
	}
}

// Resize writes a resized copy of every path into dest under the same file name.
// The first failure stops the batch, files already written are kept.
func Resize(paths []string, opt Option, dest string) error {
	if opt.Length == 0 || opt.Width == 0 {
		return cimg.ErrInvalidSize
	}
	for _, p := range paths {
		if err := resizeOne(p, opt, dest); err != nil {
			return err
		}
	}
	return nil
}

func resizeOne(src string, opt Option, dest string) error {
	name := filepath.Base(src)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil
	}

	f, err := cimg.FormatFromName(name)
	if err != nil {
		return err
	}

	out := filepath.Join(dest, name)
	attr, err := cimg.ResizeFile(src, out, opt.resizeOption(f))
	if err != nil {
		return fmt.Errorf("resize %s: %w", src, err)
	}
	logger().Debugw("resized", "src", src, "dest", out, "format", f,
		"width", attr.Width, "height", attr.Height, "size", attr.Size, "hash", attr.Hash)
	return nil
}

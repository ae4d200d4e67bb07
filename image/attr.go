package image

import (
	"mime"
)

// Dimension ...
type Dimension uint32

// Size ...
type Size uint32

// Attr describes a written image
type Attr struct {
	Width   Dimension
	Height  Dimension
	Quality Quality
	Size    Size
	Ext     string
	Mime    string
	Name    string
	Hash    string
}

// NewAttr ...
func NewAttr(w, h uint, f Format) *Attr {
	ext := f.Ext()
	return &Attr{
		Width:  Dimension(w),
		Height: Dimension(h),
		Ext:    ext,
		Mime:   mime.TypeByExtension(ext),
	}
}

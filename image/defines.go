package image

import (
	"strings"
	"unicode/utf8"
)

// Format is the container an output file is encoded with
type Format uint8

// supported formats
const (
	FormatNone Format = iota
	FormatJPEG
	FormatPNG
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatPNG:
		return "PNG"
	default:
		return "NONE"
	}
}

// Ext returns the extension with leading dot
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatPNG:
		return ".png"
	default:
		return ""
	}
}

// SplitExt returns the text after the last dot of name.
// A name whose only dot is the leading one (".png") has no extension.
func SplitExt(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// FormatFromExt maps an extension without dot to a Format, matching exactly
func FormatFromExt(ext string) (Format, error) {
	if !utf8.ValidString(ext) {
		return FormatNone, ErrInvalidStr
	}
	switch ext {
	case "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	}
	return FormatNone, ErrInvalidFormat
}

// FormatFromName resolves the Format of a file name
func FormatFromName(name string) (Format, error) {
	ext, ok := SplitExt(name)
	if !ok {
		return FormatNone, invalidFormat(name)
	}
	f, err := FormatFromExt(ext)
	if err == ErrInvalidStr {
		return f, invalidStr(name)
	}
	if err != nil {
		return f, invalidFormat(name)
	}
	return f, nil
}

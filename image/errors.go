package image

import (
	"errors"
)

// ErrorKind tags a ResizeError
type ErrorKind uint8

// kinds of ResizeError
const (
	InvalidStr ErrorKind = iota + 1
	InvalidFormat
)

// ResizeError is returned when a file name can not be mapped to a supported format
type ResizeError struct {
	Kind ErrorKind
	Name string // file name, optional
}

func (e *ResizeError) Error() string {
	var msg string
	switch e.Kind {
	case InvalidStr:
		msg = "Invalid String"
	case InvalidFormat:
		msg = "Invalid format found (only Jpeg and Png allowed)"
	default:
		msg = "unknown resize error"
	}
	if e.Name != "" {
		return e.Name + ": " + msg
	}
	return msg
}

// Is matches any ResizeError of the same kind
func (e *ResizeError) Is(target error) bool {
	t, ok := target.(*ResizeError)
	return ok && t.Kind == e.Kind
}

// vars
var (
	ErrInvalidStr    = &ResizeError{Kind: InvalidStr}
	ErrInvalidFormat = &ResizeError{Kind: InvalidFormat}
	ErrInvalidSize   = errors.New("target length and width must be positive")
)

func invalidStr(name string) error {
	return &ResizeError{Kind: InvalidStr, Name: name}
}

func invalidFormat(name string) error {
	return &ResizeError{Kind: InvalidFormat, Name: name}
}

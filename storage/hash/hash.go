// Package hash digests the bytes written to an output file
package hash

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/spaolacci/murmur3"
)

// Writer ...
type Writer struct {
	mm3 murmur3.Hash128
	n   int64
}

// New ...
func New() *Writer {
	return &Writer{mm3: murmur3.New128()}
}

// Write implements io.Writer, it never fails
func (w *Writer) Write(b []byte) (n int, err error) {
	n, err = w.mm3.Write(b)
	w.n += int64(n)
	return
}

// Len return count of bytes written
func (w *Writer) Len() int64 {
	return w.n
}

// Sum returns the 128-bit digest, big-endian
func (w *Writer) Sum() []byte {
	h1, h2 := w.mm3.Sum128()
	return combine(h1, h2)
}

func (w *Writer) String() string {
	return hex.EncodeToString(w.Sum())
}

func combine(h1, h2 uint64) []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b, h1)
	binary.BigEndian.PutUint64(b[8:], h2)
	return b
}

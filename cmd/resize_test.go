package cmd

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cimg "github.com/go-imsto/imresize/image"
)

func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"IMRESIZE_DEVELOP", "IMRESIZE_JPEG_QUALITY", "IMRESIZE_SENTRY_DSN"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writePNG(t *testing.T, name string, w, h int) {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	m.Set(w/2, h/2, color.NRGBA{255, 0, 0, 255})
	f, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, m))
	require.NoError(t, f.Close())
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	r.Close()
	return string(out)
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestParseParams(t *testing.T) {
	p, err := parseParams([]string{"src", "dst", "20", "30"})
	require.NoError(t, err)
	assert.Equal(t, &Params{Source: "src", Dest: "dst", Length: 20, Width: 30}, p)

	p, err = parseParams([]string{"src", "dst", "20", "30", "skip.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "skip.jpg", p.Exclude)

	for _, args := range [][]string{
		nil,
		{"src"},
		{"src", "dst", "20"},
		{"src", "dst", "20", "30", "skip.jpg", "extra"},
	} {
		_, err = parseParams(args)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}

	_, err = parseParams([]string{"src", "dst", "abc", "30"})
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "target_length")

	_, err = parseParams([]string{"src", "dst", "20", "-1"})
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "target_width")

	_, err = parseParams([]string{"src", "dst", "4294967296", "30"})
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = parseParams([]string{"src", "dst", "0", "30"})
	assert.ErrorIs(t, err, cimg.ErrInvalidSize)
}

func TestRunUsage(t *testing.T) {
	cleanEnv(t)
	assert.Equal(t, 2, run(nil))
	assert.Equal(t, 2, run([]string{"src", "dst"}))
	assert.Equal(t, 0, run([]string{"help"}))
}

func TestRunBadDimension(t *testing.T) {
	cleanEnv(t)
	src, dest := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(src, "b.png"), 10, 10)

	var code int
	out := captureStderr(t, func() {
		code = run([]string{src, dest, "abc", "30"})
	})
	assert.Equal(t, 1, code)
	assert.Equal(t, []string{`imresize: invalid target_length "abc": strconv.ParseUint: parsing "abc": invalid syntax`}, lines(out))

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunUsageBeforeConfig(t *testing.T) {
	cleanEnv(t)
	t.Setenv("IMRESIZE_JPEG_QUALITY", "500")

	var code int
	out := captureStderr(t, func() {
		code = run([]string{"src"})
	})
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "wrong number of arguments")
	assert.Contains(t, out, "usage: imresize source_dir dest_dir")
	assert.NotContains(t, out, "config")
}

func TestRunFailSingleLine(t *testing.T) {
	cleanEnv(t)
	src, dest := t.TempDir(), t.TempDir()
	for _, n := range []string{"a.png", "b.png", "c.png"} {
		writePNG(t, filepath.Join(src, n), 20, 20)
	}
	require.NoError(t, os.WriteFile(filepath.Join(src, "z.jpg"), []byte("garbage"), 0644))

	var code int
	out := captureStderr(t, func() {
		code = run([]string{src, dest, "5", "5"})
	})
	assert.Equal(t, 1, code)
	ls := lines(out)
	require.Len(t, ls, 1, out)
	assert.True(t, strings.HasPrefix(ls[0], "imresize: resize "), ls[0])
	assert.Contains(t, ls[0], "z.jpg")
}

func TestRunQuiet(t *testing.T) {
	cleanEnv(t)
	src, dest := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(src, "a.png"), 20, 20)

	var code int
	out := captureStderr(t, func() {
		code = run([]string{src, dest, "5", "5"})
	})
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.FileExists(t, filepath.Join(dest, "a.png"))
}

func TestRunBadConfig(t *testing.T) {
	cleanEnv(t)
	t.Setenv("IMRESIZE_JPEG_QUALITY", "500")
	assert.Equal(t, 1, run([]string{t.TempDir(), t.TempDir(), "20", "30"}))
}

func TestRun(t *testing.T) {
	cleanEnv(t)
	src, dest := t.TempDir(), t.TempDir()

	writePNG(t, filepath.Join(src, "b.png"), 50, 50)
	require.NoError(t, os.WriteFile(filepath.Join(src, "skip.txt"), []byte("x"), 0644))

	assert.Equal(t, 0, run([]string{src, dest, "20", "30", "skip.txt"}))

	out, err := os.Open(filepath.Join(dest, "b.png"))
	require.NoError(t, err)
	defer out.Close()
	cfg, format, err := image.DecodeConfig(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 30, cfg.Height)

	// without the exclusion the text file aborts the run
	assert.Equal(t, 1, run([]string{src, dest, "20", "30"}))
}

func TestRunMissingSource(t *testing.T) {
	cleanEnv(t)
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "nope"), t.TempDir(), "20", "30"}))
}

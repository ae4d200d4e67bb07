package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-imsto/imresize/batch"
	"github.com/go-imsto/imresize/config"
	cimg "github.com/go-imsto/imresize/image"
)

var cmdResize = &Command{
	UsageLine: "imresize source_dir dest_dir target_length target_width [excluded_filename]",
	Short:     "resize every jpg and png image of a directory",
	Long: `
Resize reads each entry of source_dir, scales it to exactly
target_length x target_width pixels and writes it to dest_dir under the
same file name. dest_dir must exist. An entry named excluded_filename is
skipped. The first failure stops the whole run.

Environment:
  IMRESIZE_JPEG_QUALITY  jpeg quality, 1-100, default 75
  IMRESIZE_DEVELOP       development logging
  IMRESIZE_SENTRY_DSN    report failures to sentry
`,
}

func init() {
	cmdResize.Run = resizeDir
}

var errUsage = errors.New("wrong number of arguments")

// Params of one invocation
type Params struct {
	Source  string
	Dest    string
	Length  uint32
	Width   uint32
	Exclude string
}

func parseParams(args []string) (*Params, error) {
	if len(args) < 4 || len(args) > 5 {
		return nil, errUsage
	}
	p := &Params{Source: args[0], Dest: args[1]}
	var err error
	if p.Length, err = parseDimension("target_length", args[2]); err != nil {
		return nil, err
	}
	if p.Width, err = parseDimension("target_width", args[3]); err != nil {
		return nil, err
	}
	if len(args) == 5 {
		p.Exclude = args[4]
	}
	return p, nil
}

func parseDimension(name, s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, cimg.ErrInvalidSize)
	}
	return uint32(n), nil
}

func resizeDir(p *Params) error {
	paths, err := batch.ListPaths(p.Source, p.Exclude)
	if err != nil {
		return err
	}
	logger().Debugw("listed", "dir", p.Source, "count", len(paths), "exclude", p.Exclude)

	opt := batch.Option{
		Length:  uint(p.Length),
		Width:   uint(p.Width),
		Quality: cimg.Quality(config.Current.JPEGQuality),
	}
	if err = batch.Resize(paths, opt, p.Dest); err != nil {
		return err
	}
	logger().Debugw("done", "dest", p.Dest, "count", len(paths))
	return nil
}

// fail prints err as the only line on stderr
func fail(err error, tags map[string]string) {
	errorf("imresize: %s", err)
	logger().Debugw("run fail", "err", err)
	reportError(err, tags)
	setExitStatus(1)
}

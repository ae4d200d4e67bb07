// Package cmd The command line tool for running imresize.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/template"

	"go.uber.org/zap"

	"github.com/go-imsto/imresize/config"
	zlog "github.com/go-imsto/imresize/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(p *Params) error
	UsageLine, Short, Long string
}

var (
	exitStatus = 0
	exitMu     sync.Mutex
)

func setExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func getExitStatus() int {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}

func logger() zlog.Logger {
	return zlog.Get()
}

// Main runs the tool with os.Args and exits
func Main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exitMu.Lock()
	exitStatus = 0
	exitMu.Unlock()
	atExitFuncs = nil

	if len(args) == 1 {
		switch args[0] {
		case "help", "-h", "-help", "--help":
			usage(os.Stdout)
			return 0
		}
	}

	p, err := parseParams(args)
	if err == errUsage {
		errorf("imresize: %s", err)
		usage(os.Stderr)
		return 2
	}
	if err != nil {
		errorf("imresize: %s", err)
		return 1
	}

	if _, err = config.Load(); err != nil {
		errorf("imresize: config: %s", err)
		return 1
	}

	var logger *zap.Logger
	if config.InDevelop() {
		logger, _ = zap.NewDevelopment()
		logger.Debug("logger start")
	} else {
		logger, _ = zap.NewProduction()
	}
	if logger != nil {
		atExit(func() { _ = logger.Sync() }) // flushes buffer, if any
		zlog.Set(logger.Sugar())
	}

	if err = cmdResize.Run(p); err != nil {
		fail(err, map[string]string{"source": p.Source, "dest": p.Dest})
	}
	return exit()
}

func errorf(format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

var usageTemplate = `usage: {{.UsageLine}}

{{.Short}}
{{.Long}}
`

func usage(w io.Writer) {
	fmt.Fprintln(w, "version ", config.Version)
	tmpl(w, usageTemplate, cmdResize)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

var atExitFuncs []func()

func atExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func exit() int {
	for _, f := range atExitFuncs {
		f()
	}
	return getExitStatus()
}

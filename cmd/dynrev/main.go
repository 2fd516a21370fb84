package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/markdingo/dynrev/log"
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

func warning(err error, messages ...string) {
	reportError("Warning", err, messages...)
}

//////////////////////////////////////////////////////////////////////

// stdout is reserved for the pipe protocol so nothing but the Dispatcher and framed log
// lines may ever write to it. Everything else goes to stderr.
func main() {
	opts, err := newOptions()
	if err != nil {
		fatal(err)
	}
	switch opts.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	os.Exit(run(opts, os.Stdin, os.Stdout))
}

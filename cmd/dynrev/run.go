package main

import (
	"bufio"
	"io"
	"os"

	"github.com/markdingo/dynrev/backend"
	"github.com/markdingo/dynrev/config"
	"github.com/markdingo/dynrev/database"
	"github.com/markdingo/dynrev/log"
	"github.com/markdingo/dynrev/osutil"
	"github.com/markdingo/dynrev/pool"
	"github.com/markdingo/dynrev/pregen"
)

var stderr io.Writer = os.Stderr

// run loads the configuration and runs one pipe session, returning the exit code. Start-up
// logging goes to stderr as the host does not expect anything before its handshake is
// answered.
func run(opts *options, in io.Reader, out io.Writer) int {
	log.SetOut(stderr)
	log.SetPrefix("")
	level, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		reportError("Fatal", err)
		return 1
	}
	log.SetLevel(level)

	if opts.Syslog {
		s, err := osutil.OpenSyslog(opts.name)
		if err != nil {
			warning(err, "--syslog ignored")
		} else {
			log.SetMirror(s)
			defer func() {
				log.SetMirror(nil)
				s.Close()
			}()
		}
	}

	f, err := config.Load(opts.Config)
	if err != nil {
		reportError("Fatal", err)
		return 1
	}
	table, err := pool.Compile(f)
	if err != nil {
		reportError("Fatal", err, f.Path)
		return 1
	}
	db, err := database.Build(table)
	if err != nil {
		reportError("Fatal", err, f.Path)
		return 1
	}
	log.Infof("%s %s loaded %d prefixes (%d indexed) from %s",
		programName, pregen.Version, table.Len(), db.Count(), f.Path)

	w := bufio.NewWriter(out)
	if !opts.LogStderr {
		log.SetOut(w) // Shared with the Dispatcher so LOG lines stay in sequence
		log.SetPrefix(log.ProtocolPrefix)
	}
	err = backend.NewDispatcher(opts.name, table, db, in, w).Run()
	w.Flush()
	log.SetOut(stderr)
	log.SetPrefix("")
	if err != nil {
		reportError("Fatal", err)
		return 1
	}

	return 0
}

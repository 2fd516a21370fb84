package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/markdingo/dynrev/log"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// parseOptions applies command line options over the environment-derived defaults
// already in t. Duplicate options are rejected as neither the standard "flag" package nor
// pflag detect them.
func (t *options) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
		t.setName(name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	// config flags

	fs.StringVarP(&t.Config, "config", "c", t.Config,
		`Prefix configuration file. The format is chosen by the
extension: .yml and .yaml are YAML, .toml is TOML.
`)
	fs.IntVarP(&t.LogLevel, "loglevel", "l", t.LogLevel,
		`Log level: 1=Warnings, 2=Info, 3=Queries and answers,
4=Debug, 5=Verbose including the prefix table.`)
	fs.BoolVarP(&t.Syslog, "syslog", "s", t.Syslog,
		`Mirror every protocol line and log line to the local syslog
daemon.`)
	fs.BoolVar(&t.LogStderr, "log-stderr", t.LogStderr,
		`Write log lines to stderr instead of framing them as LOG lines
in the protocol stream.`)

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true    // Documentation options that never run dynrev
	dupes["version"] = true // can be duplicate because the user may be fumbling

	fs.SetInterspersed(false)
	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)
				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(fs)
		fmt.Fprintln(log.Out())
		t.printVersion()
		return parseStop
	}

	if versionFlag {
		t.printVersion()
		return parseStop
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(log.Out(), "Error:Unexpected goop on command line: '%s'\n",
			strings.Join(fs.Args(), " "))
		return parseFailed
	}

	if err := t.validate(); err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	return parseContinue
}

func printUsage(fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- a dynamic reverse DNS pipe backend")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     dynrev -h | --help | -v | --version")
	fmt.Fprintln(o, "     dynrev [-c config-file] [-l 1..5] [-s] [--log-stderr]")
	fmt.Fprint(o, `
DESCRIPTION
     dynrev answers reverse (PTR) and matching forward (A/AAAA) queries for
     large address ranges without any per-address records. Hostnames are
     derived from the offset of an address within its configured prefix,
     encoded in base36, and forward queries are decoded back into addresses.

     dynrev runs as a subprocess of the host DNS server and speaks the pipe
     backend protocol (ABI version 1) on stdin and stdout. It is normally
     started by the host, for example:

           launch=pipe
           pipe-command=/usr/local/bin/dynrev -c /etc/dynrev.yml

     A minimal configuration file is:

           defaults:
             ttl: 300
             dns: ns1.example.net
             email: hostmaster.example.net
             nameserver: [ns1.example.net, ns2.example.net]
           prefixes:
             192.0.2.0/24:
               forward: pool.example.net
               prefix: host-
`)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "OPTIONS")
	op := fs.Output()
	fs.SetOutput(o)
	fs.PrintDefaults()
	fs.SetOutput(op)

	fmt.Fprint(o, `
ENVIRONMENT
  DYNREV_CONFIG, DYNREV_LOGLEVEL, DYNREV_SYSLOG and DYNREV_LOG_STDERR replace the
  defaults of the corresponding options. Command line options take precedence.

EXIT STATUS
  0 when the host closes the session, 1 on a failed handshake or a configuration error.
`)
}

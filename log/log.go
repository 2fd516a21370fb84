package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type logLevel int

const (
	SilentLevel logLevel = iota
	WarnLevel
	InfoLevel
	ResponseLevel
	DebugLevel
	VerboseLevel
)

// ProtocolPrefix frames log lines written into a pipe backend output stream.
const ProtocolPrefix = "LOG\t"

// Mirror receives a copy of logged lines. *syslog.Writer satisfies this interface.
type Mirror interface {
	Info(m string) error
}

var (
	out    io.Writer
	level  logLevel
	prefix string
	mirror Mirror
)

func init() {
	out = os.Stderr
}

func (t logLevel) String() string {
	switch t {
	case WarnLevel:
		return "Warn"
	case InfoLevel:
		return "Info"
	case ResponseLevel:
		return "Response"
	case DebugLevel:
		return "Debug"
	case VerboseLevel:
		return "Verbose"
	}

	return "Silent"
}

// ParseLevel converts the numeric --loglevel value to a level. Values above VerboseLevel
// are clamped rather than rejected; negative values are an error.
func ParseLevel(n int) (logLevel, error) {
	if n < 0 {
		return SilentLevel, fmt.Errorf("log level %d is negative", n)
	}
	if n > int(VerboseLevel) {
		return VerboseLevel, nil
	}

	return logLevel(n), nil
}

// SetOut changes the output of logging to the supplied io.Writer. The default is
// os.Stderr. The supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	out = w
}

// Out returns the current io.Writer for specialist logger functions which are not
// controlled by log levels. The return value will never be nil.
func Out() io.Writer {
	return out
}

// SetPrefix sets the framing prepended to every output line. Normally either "" or
// ProtocolPrefix.
func SetPrefix(p string) {
	prefix = p
}

// SetMirror attaches m, which may be nil to detach.
func SetMirror(m Mirror) {
	mirror = m
}

// SetLevel sets the current logging level.
func SetLevel(l logLevel) {
	level = l
}

// Level returns current level
func Level() logLevel {
	return level
}

// IfWarn returns true if Warn logging is written to the output stream. Applications have
// access to these If* functions in cases where evaluation of the log arguments is
// expensive and the caller wishes to minimize that cost.
func IfWarn() bool {
	return level >= WarnLevel
}

func IfInfo() bool {
	return level >= InfoLevel
}

func IfResponse() bool {
	return level >= ResponseLevel
}

func IfDebug() bool {
	return level >= DebugLevel
}

func IfVerbose() bool {
	return level >= VerboseLevel
}

// Warnf provides an approximate fmt.Printf equivalent interface to logging. Output is only
// generated if the level is >= Warn. A newline is always added to the end of the output so
// the caller should not have that in their string.
func Warnf(format string, a ...interface{}) (n int, err error) {
	return logf(WarnLevel, format, a...)
}

// Warn provides a fmt.Print like interface to logging. Warn uses fmt.Sprint to generate
// the output line thus it inherits the feature whereby spaces are added between operands
// when neither is a string.
func Warn(a ...interface{}) (n int, err error) {
	return logp(WarnLevel, a...)
}

func Infof(format string, a ...interface{}) (n int, err error) {
	return logf(InfoLevel, format, a...)
}

func Info(a ...interface{}) (n int, err error) {
	return logp(InfoLevel, a...)
}

// Responsef is for protocol traffic: queries received and answers sent.
func Responsef(format string, a ...interface{}) (n int, err error) {
	return logf(ResponseLevel, format, a...)
}

func Response(a ...interface{}) (n int, err error) {
	return logp(ResponseLevel, a...)
}

func Debugf(format string, a ...interface{}) (n int, err error) {
	return logf(DebugLevel, format, a...)
}

func Debug(a ...interface{}) (n int, err error) {
	return logp(DebugLevel, a...)
}

// Verbosef is for the details of each lookup step. Expect a lot of output.
func Verbosef(format string, a ...interface{}) (n int, err error) {
	return logf(VerboseLevel, format, a...)
}

func Verbose(a ...interface{}) (n int, err error) {
	return logp(VerboseLevel, a...)
}

// Received mirrors a protocol line read from the host. It is never written to the output
// stream as that would echo the host's own line back to it.
func Received(line string) {
	if mirror != nil {
		mirror.Info("<<< " + line)
	}
}

// Sent mirrors a protocol line written to the host.
func Sent(line string) {
	if mirror != nil {
		mirror.Info(">>> " + line)
	}
}

func logf(l logLevel, format string, a ...interface{}) (int, error) {
	if level >= l {
		return emit(l, fmt.Sprintf(format, a...))
	}

	return 0, nil
}

func logp(l logLevel, a ...interface{}) (int, error) {
	if level >= l {
		return emit(l, fmt.Sprint(a...))
	}

	return 0, nil
}

func emit(l logLevel, s string) (int, error) {
	if mirror != nil {
		mirror.Info(fmt.Sprintf("=%d= %s", int(l), s))
	}

	return prefixAndPrintLines(s, prefix)
}

// prefixAndPrintLines is the common handler which takes potentially multiple lines and
// sends them to the out stream prefixed with the supplied prefix.
func prefixAndPrintLines(lines, prefix string) (int, error) {
	if strings.Index(lines, "\n") == -1 { // Expect this to be the common case
		return fmt.Fprint(out, prefix, lines, "\n")
	}

	ar := strings.Split(lines, "\n")

	for len(ar) > 0 && len(ar[len(ar)-1]) == 0 { // Chomp trailing empty lines
		ar = ar[:len(ar)-1]
	}

	s := strings.Join(ar, "\n"+prefix) // Line1 \nprefix Line2 \nprefix Line3

	return fmt.Fprint(out, prefix, s, "\n")
}

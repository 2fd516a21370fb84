//go:build !windows && !plan9
// +build !windows,!plan9

package osutil

import (
	"log/syslog"
)

// Syslogger is the subset of *syslog.Writer needed to mirror protocol and log lines.
type Syslogger interface {
	Info(m string) error
	Close() error
}

// OpenSyslog connects to the local syslog daemon with the supplied tag, which is normally
// the program base name. Each message carries the process id.
func OpenSyslog(tag string) (Syslogger, error) {
	w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_DAEMON, tag)
	if err != nil {
		return nil, err // Avoid a non-nil interface holding a nil *Writer
	}

	return w, nil
}

//go:build windows || plan9
// +build windows plan9

package osutil

import "errors"

type Syslogger interface {
	Info(m string) error
	Close() error
}

var errNoSyslog = errors.New("syslog is not supported on this platform")

func OpenSyslog(tag string) (Syslogger, error) {
	return nil, errNoSyslog
}

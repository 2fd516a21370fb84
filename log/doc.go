/*
Package log provides global output control across the whole application. Logging comes in
six levels: Silent, Warn, Info, Response, Debug and Verbose, each more detailed than the
previous. The numeric values 1-5 of the non-silent levels match the --loglevel option.
Levels are inclusive, so, e.g., if DebugLevel is set that implies ResponseLevel logging.

When running as a pipe backend the output is the protocol stream itself and each line is
framed with a "LOG\t" prefix, which the host DNS server copies into its own log. SetPrefix
changes the framing.

The Print and Printf interfaces are similar to the fmt versions with a few subtle
differences due to the need to prefix lines. The main difference is that if the resulting
string contains multiple lines they are all printed with the prefix. The second difference
is that a trailing newline is not needed and excess ones are trimmed.

A Mirror, normally a syslog writer, may be attached with SetMirror. Every line which passes
the level check is also sent to the mirror, as are protocol lines passed to Received() and
Sent().
*/
package log

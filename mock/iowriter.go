package mock

import "strings"

// IOWriter captures everything written to it.
type IOWriter struct {
	line []byte
}

func (t *IOWriter) Reset() {
	t.line = make([]byte, 0)
}

func (t *IOWriter) Write(b []byte) (int, error) {
	t.line = append(t.line, b...)

	return len(b), nil
}

func (t *IOWriter) String() string {
	return string(t.line)
}

func (t *IOWriter) Len() int {
	return len(t.line)
}

// Lines returns the output split into lines without the trailing empty line.
func (t *IOWriter) Lines() []string {
	s := strings.TrimSuffix(t.String(), "\n")
	if len(s) == 0 {
		return nil
	}

	return strings.Split(s, "\n")
}

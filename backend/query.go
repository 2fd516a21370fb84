package backend

import (
	"strings"

	"github.com/miekg/dns"
)

const (
	minQueryFields = 6
	helo           = "HELO"
	axfrKind       = "AXFR"
)

// Query is one parsed query line.
type Query struct {
	Kind   string // Normally "Q"
	QName  string
	QClass string
	QType  uint16 // Zero if unknown to miekg
	Type   string // As sent
	ID     string
	Remote string
	Local  string // Optional and unused
}

// parseQuery splits a query line. False is returned if there are too few fields.
func parseQuery(line string) (*Query, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < minQueryFields {
		return nil, false
	}

	q := &Query{
		Kind:   fields[0],
		QName:  fields[1],
		QClass: fields[2],
		Type:   fields[3],
		QType:  dns.StringToType[fields[3]],
		ID:     fields[4],
		Remote: fields[5],
	}
	if len(fields) > minQueryFields {
		q.Local = fields[6]
	}

	return q, true
}

// is returns true if the query type is any of types.
func (t *Query) is(types ...uint16) bool {
	for _, qt := range types {
		if t.QType == qt {
			return true
		}
	}

	return false
}

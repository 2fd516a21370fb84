package backend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/dynrev/database"
	"github.com/markdingo/dynrev/dnsutil"
	"github.com/markdingo/dynrev/log"
	"github.com/markdingo/dynrev/pool"
)

// Clock supplies the time used to derive SOA serials.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// HandshakeError is returned by Run when the first line is not a HELO.
type HandshakeError struct {
	Line string
}

func (t *HandshakeError) Error() string {
	return fmt.Sprintf("handshake failed: expected %s, got '%s'", helo, t.Line)
}

// Dispatcher answers queries for one session. The table and database are shared
// read-only; lastZone is the only state which changes between queries.
type Dispatcher struct {
	name  string
	table *pool.Table
	db    *database.Database
	in    *bufio.Reader
	out   *bufio.Writer
	clock Clock

	lastZone *pool.PrefixRecord // Most recent SOA answer, consulted by AXFR
	lastApex string             // Which of lastZone's names matched

	stats stats
}

// NewDispatcher creates a Dispatcher reading queries from r and writing answers to w. If
// w is already a *bufio.Writer it is used as-is, which allows the log package to share the
// same buffered stream so that LOG lines interleave correctly with answers.
func NewDispatcher(name string, table *pool.Table, db *database.Database, r io.Reader, w io.Writer) *Dispatcher {
	return &Dispatcher{
		name:  name,
		table: table,
		db:    db,
		in:    bufio.NewReader(r),
		out:   bufio.NewWriter(w),
		clock: realClock{},
		stats: newStats(),
	}
}

// SetClock replaces the wall clock, normally for tests.
func (t *Dispatcher) SetClock(c Clock) {
	t.clock = c
}

// Run performs the handshake then answers queries until an empty line or end of input,
// in which case nil is returned. A failed handshake returns a *HandshakeError.
func (t *Dispatcher) Run() error {
	defer t.out.Flush()

	line, err := t.readLine()
	if !strings.HasPrefix(line, helo) {
		t.send("FAIL")
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return &HandshakeError{Line: line}
	}
	t.send(fmt.Sprintf("OK\t%s ready with %d prefixes configured, loglevel %d",
		t.name, t.table.Len(), int(log.Level())))
	if err := t.out.Flush(); err != nil {
		return err
	}
	if log.IfVerbose() {
		log.Verbosef("prefixes:\n%s", t.table.Dump())
	}

	for {
		line, err := t.readLine()
		if len(line) == 0 {
			t.stats.report()
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
		t.answer(line)
		if err := t.out.Flush(); err != nil {
			return err
		}
	}
}

// readLine returns the next line stripped of surrounding white-space. Any error is
// returned along with whatever partial line was read.
func (t *Dispatcher) readLine() (string, error) {
	s, err := t.in.ReadString('\n')
	s = strings.TrimSpace(s)
	log.Received(s)

	return s, err
}

// answer handles one query line. Every query ends with END regardless of outcome.
func (t *Dispatcher) answer(line string) {
	defer t.send("END")

	t.stats.lines++
	log.Responsef("QUERY\t%s", line)

	if strings.HasPrefix(line, axfrKind+"\t") || line == axfrKind {
		t.axfr(strings.Split(line, "\t"))
		return
	}

	q, ok := parseQuery(line)
	if !ok {
		t.stats.malformed++
		log.Warnf("Host sent unparsable line: %s", line)
		return
	}
	log.Debugf("Parsed query: qname=%s, qtype=%s, qclass=%s, qid=%s, ip=%s",
		q.QName, q.Type, q.QClass, q.ID, q.Remote)
	t.stats.query(q.Type)

	if q.is(dns.TypeAAAA, dns.TypeANY) {
		t.forward(q, dnsutil.IPv6)
	}
	if q.is(dns.TypeA, dns.TypeANY) {
		t.forward(q, dnsutil.IPv4)
	}
	if q.is(dns.TypePTR, dns.TypeANY) {
		switch {
		case strings.HasSuffix(q.QName, dnsutil.V6Suffix):
			t.reverse(q, dnsutil.IPv6)
		case strings.HasSuffix(q.QName, dnsutil.V4Suffix):
			t.reverse(q, dnsutil.IPv4)
		}
	}
	if q.is(dns.TypeSOA, dns.TypeANY, dns.TypeNS) {
		t.authority(q)
	}
}

// data formats rr as a DATA line. The class is echoed from the query rather than taken
// from the RR.
func (t *Dispatcher) data(class, id string, rr dns.RR) {
	h := rr.Header()
	line := fmt.Sprintf("DATA\t%s\t%s\t%s\t%d\t%s\t%s",
		h.Name, class, dnsutil.TypeToString(h.Rrtype), h.Ttl, id, dnsutil.RData(rr))
	log.Response(line)
	t.send(line)
	t.stats.answer(dnsutil.TypeToString(h.Rrtype))
}

func (t *Dispatcher) send(line string) {
	t.out.WriteString(line)
	t.out.WriteByte('\n')
	log.Sent(line)
}

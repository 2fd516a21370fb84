package pool

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/markdingo/dynrev/config"
	"github.com/markdingo/dynrev/dnsutil"
	"github.com/markdingo/dynrev/log"
)

// DelegationSeparator follows the delegation octet appended to the host prefix of a
// record split from a non octet-aligned ipv4 network.
const DelegationSeparator = "-"

var ErrIPv6Split = errors.New("ipv6 network is not nibble aligned and cannot be split")

// Table is the ordered, immutable result of Compile.
type Table struct {
	records []*PrefixRecord
}

// Records returns the records in configuration order with split records in place of their
// parent. The returned slice must not be modified.
func (t *Table) Records() []*PrefixRecord {
	return t.records
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Dump returns one line per record, suitable for verbose logging.
func (t *Table) Dump() string {
	lines := make([]string, 0, len(t.records))
	for _, r := range t.records {
		lines = append(lines, r.String())
	}

	return strings.Join(lines, "\n")
}

// Compile converts the raw configuration into a Table. Any error is a fatal configuration
// error and identifies the offending prefix.
func Compile(f *config.File) (*Table, error) {
	t := &Table{}
	for _, p := range f.Prefixes {
		recs, err := compilePrefix(f.Defaults, p)
		if err != nil {
			return nil, fmt.Errorf("prefix %s: %w", p.CIDR, err)
		}
		t.records = append(t.records, recs...)
	}

	return t, nil
}

func compilePrefix(defaults config.Fields, p config.Prefix) ([]*PrefixRecord, error) {
	ip, ipNet, err := net.ParseCIDR(strings.TrimSpace(p.CIDR))
	if err != nil {
		return nil, err
	}
	if !ip.Equal(ipNet.IP) {
		log.Warnf("Prefix %s has host bits set, using %s", p.CIDR, ipNet)
	}

	s, err := resolve(defaults, p.Fields)
	if err != nil {
		return nil, err
	}
	rec := newRecord(ipNet, s)

	// Only a domain set on the prefix itself is explicit and used as-is. A default domain
	// is replaced by the synthesized reverse zone names.

	if v, ok := p.Fields.Lookup(KeyDomain); ok && v != nil {
		return []*PrefixRecord{rec}, nil
	}

	zones, err := dnsutil.ReverseZoneNames(ipNet)
	if err != nil {
		return nil, err
	}
	if len(zones) == 1 {
		rec.ReverseDomain = zones[0].Name
		return []*PrefixRecord{rec}, nil
	}
	if rec.Family == dnsutil.IPv6 {
		return nil, fmt.Errorf("%w: %d reverse zones", ErrIPv6Split, len(zones))
	}

	// Each delegated child inherits from its parent via the same merge as everything
	// else, with just the domain and prefix overridden.

	recs := make([]*PrefixRecord, 0, len(zones))
	for _, z := range zones {
		child := config.Fields{
			KeyDomain: z.Name,
			KeyPrefix: s.Prefix + dnsutil.DelegationLabel(z.Name) + DelegationSeparator,
		}
		cs, err := resolve(defaults, merge(p.Fields, child))
		if err != nil {
			return nil, err // Should never fail as the parent passed
		}
		recs = append(recs, newRecord(z.Network, cs))
	}
	log.Debugf("Prefix %s split into %d delegated records", ipNet, len(recs))

	return recs, nil
}

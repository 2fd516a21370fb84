package backend

import (
	"strconv"

	"github.com/miekg/dns"

	"github.com/markdingo/dynrev/base36"
	"github.com/markdingo/dynrev/dnsutil"
	"github.com/markdingo/dynrev/log"
	"github.com/markdingo/dynrev/pool"
)

// forward answers A or AAAA queries. Records are searched in configuration order and the
// first one which decodes to an address within its network wins. Any number of records
// may share a forward zone, so a hostname which fails to decode in one record is tried in
// the next.
func (t *Dispatcher) forward(q *Query, family int) {
	for _, rec := range t.table.Records() {
		if rec.Family != family {
			continue
		}
		token, ok := rec.Token(q.QName)
		if !ok {
			continue
		}
		offset, err := base36.Decode(token)
		if err != nil {
			t.stats.decodeMiss++
			log.Verbosef("%s token '%s': %s", rec.Network, token, err)
			continue
		}
		ip, ok := rec.Address(offset)
		if !ok {
			t.stats.outOfRange++
			log.Verbosef("%s token '%s' is beyond the network", rec.Network, token)
			continue
		}

		var rr dns.RR
		if family == dnsutil.IPv6 {
			rr = dnsutil.NewAAAA(q.QName, rec.TTL, ip)
		} else {
			rr = dnsutil.NewAddress(q.QName, rec.TTL, ip)
		}
		t.data(q.QClass, q.ID, rr)
		return
	}
}

// reverse answers PTR queries. A qname which does not reconstruct into an address is
// replaced with a sentinel which is normally not covered by any prefix.
func (t *Dispatcher) reverse(q *Query, family int) {
	ip, err := dnsutil.ReverseQNameToIP(q.QName)
	if err != nil {
		t.stats.invertError++
		log.Debug(err.Error())
		ip = dnsutil.V4Sentinel
		if family == dnsutil.IPv6 {
			ip = dnsutil.V6Sentinel
		}
	}
	if dnsutil.Family(ip) != family { // An ip6.arpa name can reconstruct a v4-mapped address
		t.stats.noMatch++
		return
	}

	rec := t.db.Lookup(ip)
	if rec == nil {
		t.stats.noMatch++
		return
	}
	offset, ok := rec.Offset(ip)
	if !ok {
		t.stats.noMatch++
		return
	}
	t.data(q.QClass, q.ID, dnsutil.NewPTR(q.QName, rec.TTL, rec.Hostname(base36.Encode(offset))))
}

// authority answers SOA, NS and ANY queries for either apex of a record. Only the first
// matching record answers. An SOA answer becomes the zone returned by a subsequent AXFR.
func (t *Dispatcher) authority(q *Query) {
	for _, rec := range t.table.Records() {
		var apex string
		switch q.QName {
		case rec.ReverseDomain:
			apex = rec.ReverseDomain
		case rec.ForwardZone:
			apex = rec.ForwardZone
		default:
			continue
		}

		if !q.is(dns.TypeNS) {
			t.data(q.QClass, q.ID, t.soa(rec, apex))
			t.lastZone = rec
			t.lastApex = apex
		}
		if !q.is(dns.TypeSOA) {
			t.nameservers(q.QClass, q.ID, rec, apex)
		}
		return
	}
}

// axfr emits the SOA and NS of the most recent SOA answer. There are no other records to
// transfer as everything else is synthesized on demand.
func (t *Dispatcher) axfr(fields []string) {
	t.stats.axfr++
	id := "-1"
	if len(fields) > 1 && len(fields[1]) > 0 {
		id = fields[1]
	}
	if t.lastZone == nil {
		log.Debug("AXFR with no preceding SOA")
		return
	}
	class := dns.ClassToString[dns.ClassINET]
	t.data(class, id, t.soa(t.lastZone, t.lastApex))
	t.nameservers(class, id, t.lastZone, t.lastApex)
}

func (t *Dispatcher) nameservers(class, id string, rec *pool.PrefixRecord, apex string) {
	for _, ns := range rec.Nameservers {
		t.data(class, id, dnsutil.NewNS(apex, rec.TTL, ns))
	}
}

// soa synthesizes the SOA with a serial derived from the current UTC hour.
func (t *Dispatcher) soa(rec *pool.PrefixRecord, apex string) *dns.SOA {
	return dnsutil.NewSOA(apex, rec.TTL, rec.PrimaryNS, rec.AdminEmail, serial(t.clock))
}

// serial returns YYYYMMDDHH which fits comfortably in 32 bits until well past any
// plausible lifetime of this program.
func serial(c Clock) uint32 {
	n, _ := strconv.ParseUint(c.Now().UTC().Format("2006010215"), 10, 32)

	return uint32(n)
}

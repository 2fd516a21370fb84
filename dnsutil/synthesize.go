package dnsutil

import (
	"net"

	"github.com/miekg/dns"
)

// The New* functions construct the RRs which the backend emits. Owner names are used as
// supplied, which for the pipe protocol means without a trailing dot.

func newHeader(owner string, rrtype uint16, ttl uint32) dns.RR_Header {
	return dns.RR_Header{Name: owner, Rrtype: rrtype, Class: dns.ClassINET, Ttl: ttl}
}

// NewAddress returns an A RR for an ipv4 address or an AAAA RR for anything else.
func NewAddress(owner string, ttl uint32, ip net.IP) dns.RR {
	if ip4 := ip.To4(); ip4 != nil {
		return &dns.A{Hdr: newHeader(owner, dns.TypeA, ttl), A: ip4}
	}

	return &dns.AAAA{Hdr: newHeader(owner, dns.TypeAAAA, ttl), AAAA: ip.To16()}
}

// NewAAAA is like NewAddress except that an AAAA is always returned, even for an ipv4
// mapped address.
func NewAAAA(owner string, ttl uint32, ip net.IP) dns.RR {
	return &dns.AAAA{Hdr: newHeader(owner, dns.TypeAAAA, ttl), AAAA: ip.To16()}
}

// NewPTR returns a PTR RR pointing qname at the synthesized hostname.
func NewPTR(qname string, ttl uint32, hostname string) *dns.PTR {
	return &dns.PTR{Hdr: newHeader(qname, dns.TypePTR, ttl), Ptr: hostname}
}

// NewNS returns an NS RR for the zone apex.
func NewNS(apex string, ttl uint32, ns string) *dns.NS {
	return &dns.NS{Hdr: newHeader(apex, dns.TypeNS, ttl), Ns: ns}
}

// Fixed SOA timers. These never vary between zones.
const (
	SOARefresh = 10800
	SOARetry   = 3600
	SOAExpire  = 604800
	SOAMinTTL  = 3600
)

// NewSOA returns an SOA RR with the fixed timers.
func NewSOA(apex string, ttl uint32, primary, email string, serial uint32) *dns.SOA {
	return &dns.SOA{
		Hdr:     newHeader(apex, dns.TypeSOA, ttl),
		Ns:      primary,
		Mbox:    email,
		Serial:  serial,
		Refresh: SOARefresh,
		Retry:   SOARetry,
		Expire:  SOAExpire,
		Minttl:  SOAMinTTL,
	}
}

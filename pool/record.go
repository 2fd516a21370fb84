package pool

import (
	"fmt"
	"math/big"
	"net"
	"strings"

	"github.com/markdingo/dynrev/dnsutil"
)

// PrefixRecord is the finalized description of one address range. All fields are set by
// Compile() and must be treated as read-only thereafter.
type PrefixRecord struct {
	Network       *net.IPNet
	ForwardZone   string // Suffix of synthesized hostnames and an SOA/NS apex
	ReverseDomain string // The other SOA/NS apex, normally an in-addr.arpa or ip6.arpa zone
	HostPrefix    string // Wrapped around the base36 token to form the first label(s)
	HostPostfix   string
	TTL           uint32
	Nameservers   []string
	PrimaryNS     string // SOA mname
	AdminEmail    string // SOA rname in dotted form
	Family        int    // dnsutil.IPv4 or dnsutil.IPv6

	base *big.Int // Derived from Network
	size *big.Int
}

func newRecord(ipNet *net.IPNet, s *settings) *PrefixRecord {
	t := &PrefixRecord{
		Network:       ipNet,
		ForwardZone:   dnsutil.ChompCanonicalName(s.Forward),
		ReverseDomain: dnsutil.ChompCanonicalName(s.Domain),
		HostPrefix:    s.Prefix,
		HostPostfix:   s.Postfix,
		TTL:           uint32(*s.TTL),
		Nameservers:   s.Nameserver,
		PrimaryNS:     s.DNS,
		AdminEmail:    s.Email,
		Family:        dnsutil.IPv6,
	}
	if _, bits := ipNet.Mask.Size(); bits == 32 {
		t.Family = dnsutil.IPv4
	}
	t.base = dnsutil.IPToInt(ipNet.IP, t.Family)
	t.size = dnsutil.NetworkSize(ipNet)

	return t
}

// Base returns a copy of the network address as an integer.
func (t *PrefixRecord) Base() *big.Int {
	return new(big.Int).Set(t.base)
}

// Size returns a copy of the number of addresses in the network.
func (t *PrefixRecord) Size() *big.Int {
	return new(big.Int).Set(t.size)
}

// Address converts an offset within the network to an absolute address. False is returned
// if the offset falls outside the network.
func (t *PrefixRecord) Address(offset *big.Int) (net.IP, bool) {
	if offset.Sign() < 0 || offset.Cmp(t.size) >= 0 {
		return nil, false
	}
	ip := dnsutil.IntToIP(new(big.Int).Add(t.base, offset), t.Family)

	return ip, ip != nil
}

// Offset is the inverse of Address. False is returned if ip is not within the network.
func (t *PrefixRecord) Offset(ip net.IP) (*big.Int, bool) {
	if !t.Network.Contains(ip) {
		return nil, false
	}

	return new(big.Int).Sub(dnsutil.IPToInt(ip, t.Family), t.base), true
}

// ForwardSuffix is what follows the token in a hostname: the postfix, a dot and the
// forward zone.
func (t *PrefixRecord) ForwardSuffix() string {
	return t.HostPostfix + "." + t.ForwardZone
}

// Hostname wraps token with the prefix and postfix and appends the forward zone.
func (t *PrefixRecord) Hostname(token string) string {
	return t.HostPrefix + token + t.ForwardSuffix()
}

// Token extracts the token from a forward hostname. False is returned if hostname is not
// shaped like one of ours.
func (t *PrefixRecord) Token(hostname string) (string, bool) {
	suffix := t.ForwardSuffix()
	if !strings.HasPrefix(hostname, t.HostPrefix) || !strings.HasSuffix(hostname, suffix) {
		return "", false
	}
	if len(hostname) < len(t.HostPrefix)+len(suffix) {
		return "", false
	}

	return hostname[len(t.HostPrefix) : len(hostname)-len(suffix)], true
}

func (t *PrefixRecord) String() string {
	return fmt.Sprintf("%s fwd=%s rev=%s prefix=%q postfix=%q ttl=%d ns=%s soa=%s/%s",
		t.Network, t.ForwardZone, t.ReverseDomain, t.HostPrefix, t.HostPostfix, t.TTL,
		strings.Join(t.Nameservers, ","), t.PrimaryNS, t.AdminEmail)
}

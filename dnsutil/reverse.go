package dnsutil

import (
	"fmt"
	"math/big"
	"net"
	"strings"
)

// ReverseZone is one reverse zone implied by a network together with the sub-network it
// covers.
type ReverseZone struct {
	Name    string     // E.g. 2.0.192.in-addr.arpa
	Network *net.IPNet // E.g. 192.0.2.0/24
}

// ReverseZoneNames returns the reverse zones needed to cover ipNet. A network which ends
// on a label boundary (octet for ipv4, nibble for ipv6) needs exactly one zone. Otherwise
// the network is widened to the next boundary and one zone is returned per sub-network, so
// 10.0.0.0/22 returns four /24 zones and 192.0.2.0/30 returns four /32 zones.
//
// Zones are returned in ascending address order.
func ReverseZoneNames(ipNet *net.IPNet) ([]ReverseZone, error) {
	ones, bits := ipNet.Mask.Size()
	var labelBits, labelCount int
	switch bits {
	case 32:
		labelBits, labelCount = 8, 4
	case 128:
		labelBits, labelCount = 4, 32
	default:
		return nil, fmt.Errorf("Malformed network mask for '%s'", ipNet)
	}

	labels := (ones + labelBits - 1) / labelBits
	if labels == 0 && bits == 32 { // There is no in-addr.arpa zone for an ipv4 /0
		labels = 1
	}
	subBits := labels * labelBits
	family := IPv6
	if bits == 32 {
		family = IPv4
	}

	base := IPToInt(ipNet.IP.Mask(ipNet.Mask), family)
	step := new(big.Int).Lsh(big.NewInt(1), uint(bits-subBits))
	count := 1 << (subBits - ones) // At most 2^8 for ipv4 and 2^3 for ipv6

	zones := make([]ReverseZone, 0, count)
	for ix := 0; ix < count; ix++ {
		ip := IntToIP(base, family)
		sub := &net.IPNet{IP: ip, Mask: net.CIDRMask(subBits, bits)}
		zones = append(zones, ReverseZone{Name: reverseZoneName(ip, labelCount-labels), Network: sub})
		base = new(big.Int).Add(base, step)
	}

	return zones, nil
}

// reverseZoneName converts ip to its full reverse qName then drops the leading host
// labels, leaving the zone name.
func reverseZoneName(ip net.IP, drop int) string {
	qName := IPToReverseQName(ip)
	for ; drop > 0; drop-- {
		ix := strings.IndexByte(qName, '.')
		qName = qName[ix+1:]
	}

	return qName
}

// DelegationLabel returns the final forward label of a reverse zone name, that is, the
// most specific octet or nibble which distinguishes the zone from its siblings. For
// 2.0.192.in-addr.arpa this is "2".
func DelegationLabel(zoneName string) string {
	if ix := strings.IndexByte(zoneName, '.'); ix > 0 {
		return zoneName[:ix]
	}

	return zoneName
}

package dnsutil

import (
	"fmt"
	"math/big"
	"net"
	"strings"
)

// IPToReverseQName converts an IP address into the reverse string normally looked up in
// the reverse path. It includes the reverse suffix but, in keeping with the pipe protocol,
// has no trailing dot.
//
// An empty string is returned if the IP address cannot be parsed.
//
// This is not intended to be a high-speed function.
func IPToReverseQName(ip net.IP) string {
	if ip == nil { // Emulate net.ParseIP and be nice.
		return ""
	}
	if ip4 := ip.To4(); ip4 != nil {
		return fmt.Sprintf("%d.%d.%d.%d%s", ip4[3], ip4[2], ip4[1], ip4[0], V4Suffix)
	}

	ip6 := ip.To16()
	if ip6 == nil {
		return ""
	}

	joiner := make([]string, 0, 32)
	for ix := 15; ix >= 0; ix-- {
		joiner = append(joiner, fmt.Sprintf("%x", ip6[ix]&0xf))
		joiner = append(joiner, fmt.Sprintf("%x", ip6[ix]&0xf0>>4))
	}

	return strings.Join(joiner, ".") + V6Suffix
}

// Family returns IPv4 or IPv6 for the supplied address, or zero if it is neither.
func Family(ip net.IP) int {
	if ip.To4() != nil {
		return IPv4
	}
	if ip.To16() != nil {
		return IPv6
	}

	return 0
}

// IPToInt returns the address as an unsigned integer in the width of family, thus an ipv4
// address is 32 bits wide when family is IPv4 and an ipv4-mapped 128 bit value otherwise.
func IPToInt(ip net.IP, family int) *big.Int {
	b := ip.To16()
	if family == IPv4 {
		b = ip.To4()
	}

	return new(big.Int).SetBytes(b)
}

// IntToIP is the inverse of IPToInt. Nil is returned if n is negative or too wide for
// family.
func IntToIP(n *big.Int, family int) net.IP {
	size := net.IPv6len
	if family == IPv4 {
		size = net.IPv4len
	}
	if n.Sign() < 0 || n.BitLen() > size*8 {
		return nil
	}
	ip := make(net.IP, size)
	n.FillBytes(ip)

	return ip
}

// NetworkSize returns the number of addresses in ipNet.
func NetworkSize(ipNet *net.IPNet) *big.Int {
	ones, bits := ipNet.Mask.Size()

	return new(big.Int).Lsh(big.NewInt(1), uint(bits-ones))
}

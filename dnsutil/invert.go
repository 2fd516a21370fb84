package dnsutil

import (
	"fmt"
	"net"
	"strings"
)

// Sentinel addresses substituted by callers when a reverse qName does not reconstruct
// into an address. They deliberately do not stand for any real query.
var (
	V4Sentinel = net.ParseIP("127.0.0.1")
	V6Sentinel = net.IPv6unspecified
)

// ReverseQNameToIP extracts and inverts the purported IP address from a reverse qName. The
// two trailing labels (in-addr.arpa or ip6.arpa) are dropped and the remaining labels are
// reversed. For ipv4 the labels are joined as octets; for ipv6 they are regrouped four at
// a time into hextets. Like any name in the DNS, a reverse qName does not *have* to
// represent an IP address so an error is returned if the result does not parse. That
// includes truncated names such as 2.0.192.in-addr.arpa.
func ReverseQNameToIP(qName string) (net.IP, error) {
	switch {
	case strings.HasSuffix(qName, V4Suffix):
		return ReverseQNameToIPv4(qName)
	case strings.HasSuffix(qName, V6Suffix):
		return ReverseQNameToIPv6(qName)
	}

	return nil, fmt.Errorf("Unknown reverse suffix '%s'", qName)
}

// ReverseQNameToIPv4 converts 2.1.168.192.in-addr.arpa into 192.168.1.2.
func ReverseQNameToIPv4(qName string) (net.IP, error) {
	labels := invertLabels(qName)
	ip := net.ParseIP(strings.Join(labels, "."))
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("Malformed reverse ipv4 address '%s'", qName)
	}

	return ip, nil
}

// ReverseQNameToIPv6 converts the 32 nibble labels of an ip6.arpa qName back into an ipv6
// address.
func ReverseQNameToIPv6(qName string) (net.IP, error) {
	labels := invertLabels(qName)
	groups := make([]string, 0, 8)
	for ix := 0; ix < len(labels); ix += 4 {
		end := ix + 4
		if end > len(labels) {
			end = len(labels)
		}
		groups = append(groups, strings.Join(labels[ix:end], ""))
	}
	ip := net.ParseIP(strings.Join(groups, ":"))
	if ip == nil {
		return nil, fmt.Errorf("Malformed reverse ipv6 address '%s'", qName)
	}

	return ip, nil
}

// invertLabels drops the two trailing labels and returns the rest in reverse order.
func invertLabels(qName string) []string {
	labels := strings.Split(qName, ".")
	if len(labels) < 2 {
		return nil
	}
	labels = labels[:len(labels)-2]
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}

	return labels
}

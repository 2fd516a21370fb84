package dnsutil

const (
	V4Suffix = ".in-addr.arpa" // The leading '.' is important here as some callers
	V6Suffix = ".ip6.arpa"     // rely on strings.HasSuffix() to label match.

	IPv4 = 4 // Address families as carried by pool.PrefixRecord
	IPv6 = 6
)

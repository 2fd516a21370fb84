package dnsutil

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// TypeToString converts an miekg type to a string, but if the resulting string is empty
// it's replaced with the numeric value.
func TypeToString(t uint16) (s string) {
	s = dns.TypeToString[t]
	if len(s) == 0 {
		s = fmt.Sprintf("T-%d", t)
	}

	return
}

// RData returns the presentation format of the RR payload. Miekg does not offer a public
// function for just the payload so the header part of String() is removed instead.
func RData(rr dns.RR) string {
	return strings.TrimPrefix(rr.String(), rr.Header().String())
}

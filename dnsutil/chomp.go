package dnsutil

import (
	"github.com/miekg/dns"
)

// Make name canonical but lose trailing dot. The pipe protocol never carries a trailing
// dot so all configured names are held in this form to allow direct string comparison
// with qNames.
func ChompCanonicalName(n string) string {
	if len(n) == 0 {
		return n
	}
	n = dns.CanonicalName(n)
	if len(n) > 0 && n[len(n)-1] == '.' {
		n = n[:len(n)-1]
	}

	return n
}

package dnsutil

import (
	"net"
	"testing"

	"github.com/miekg/dns"
)

func TestNewAddress(t *testing.T) {
	rr := NewAddress("h1.example.net", 60, net.ParseIP("192.0.2.199"))
	if rr.Header().Rrtype != dns.TypeA {
		t.Error("Expected A, got", TypeToString(rr.Header().Rrtype))
	}
	if RData(rr) != "192.0.2.199" {
		t.Error("A rdata wrong", RData(rr))
	}

	rr = NewAddress("h1.example.net", 60, net.ParseIP("2001:db8::27"))
	if rr.Header().Rrtype != dns.TypeAAAA {
		t.Error("Expected AAAA, got", TypeToString(rr.Header().Rrtype))
	}
	if RData(rr) != "2001:db8::27" {
		t.Error("AAAA rdata wrong", RData(rr))
	}

	rr = NewAAAA("h1.example.net", 60, net.ParseIP("::1"))
	if rr.Header().Rrtype != dns.TypeAAAA || RData(rr) != "::1" {
		t.Error("NewAAAA wrong", rr)
	}
}

func TestNewPTRAndNS(t *testing.T) {
	ptr := NewPTR("199.2.0.192.in-addr.arpa", 300, "host-5j.example.net")
	if RData(ptr) != "host-5j.example.net" {
		t.Error("PTR rdata wrong", RData(ptr))
	}
	if ptr.Hdr.Ttl != 300 || ptr.Hdr.Name != "199.2.0.192.in-addr.arpa" {
		t.Error("PTR header wrong", ptr.Hdr.String())
	}

	ns := NewNS("example.net", 300, "ns1.example.net")
	if RData(ns) != "ns1.example.net" {
		t.Error("NS rdata wrong", RData(ns))
	}
}

func TestNewSOA(t *testing.T) {
	soa := NewSOA("2.0.192.in-addr.arpa", 3600, "ns1.example.net", "hostmaster.example.net", 2026101912)
	exp := "ns1.example.net hostmaster.example.net 2026101912 10800 3600 604800 3600"
	if RData(soa) != exp {
		t.Error("SOA rdata wrong. Got", RData(soa), "Expected", exp)
	}
}

func TestTypeToString(t *testing.T) {
	if TypeToString(dns.TypePTR) != "PTR" {
		t.Error("PTR not converted")
	}
	if TypeToString(65280) != "T-65280" {
		t.Error("Unknown type not converted", TypeToString(65280))
	}
}

func TestChompCanonicalName(t *testing.T) {
	testCases := []struct{ input, expect string }{
		{"Example.NET.", "example.net"},
		{"example.net", "example.net"},
		{"", ""},
		{".", ""},
	}
	for ix, tc := range testCases {
		got := ChompCanonicalName(tc.input)
		if got != tc.expect {
			t.Error(ix, "Input:", tc.input, "Got", got, "Expected", tc.expect)
		}
	}
}

package dnsutil

import (
	"net"
	"testing"
)

func TestReverseZoneNames(t *testing.T) {
	testCases := []struct {
		cidr   string
		expect []string // Alternating zone name and sub-network
	}{
		{"192.0.2.0/24", []string{"2.0.192.in-addr.arpa", "192.0.2.0/24"}},
		{"10.0.0.0/8", []string{"10.in-addr.arpa", "10.0.0.0/8"}},
		{"172.16.0.0/16", []string{"16.172.in-addr.arpa", "172.16.0.0/16"}},
		{"10.0.0.0/22", []string{
			"0.0.10.in-addr.arpa", "10.0.0.0/24",
			"1.0.10.in-addr.arpa", "10.0.1.0/24",
			"2.0.10.in-addr.arpa", "10.0.2.0/24",
			"3.0.10.in-addr.arpa", "10.0.3.0/24"}},
		{"10.20.0.0/15", []string{"20.10.in-addr.arpa", "10.20.0.0/16",
			"21.10.in-addr.arpa", "10.21.0.0/16"}},
		{"192.0.2.4/30", []string{
			"4.2.0.192.in-addr.arpa", "192.0.2.4/32",
			"5.2.0.192.in-addr.arpa", "192.0.2.5/32",
			"6.2.0.192.in-addr.arpa", "192.0.2.6/32",
			"7.2.0.192.in-addr.arpa", "192.0.2.7/32"}},
		{"2001:db8::/32", []string{"8.b.d.0.1.0.0.2.ip6.arpa", "2001:db8::/32"}},
		{"2001:db8:1::/48", []string{"1.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa", "2001:db8:1::/48"}},
		{"2001:db8::/31", []string{
			"8.b.d.0.1.0.0.2.ip6.arpa", "2001:db8::/32",
			"9.b.d.0.1.0.0.2.ip6.arpa", "2001:db9::/32"}},
		{"::/0", []string{"ip6.arpa", "::/0"}},
	}

	for ix, tc := range testCases {
		_, ipNet, err := net.ParseCIDR(tc.cidr)
		if err != nil {
			t.Fatal(ix, "Setup error", err)
		}
		zones, err := ReverseZoneNames(ipNet)
		if err != nil {
			t.Error(ix, "Unexpected error", tc.cidr, err)
			continue
		}
		if len(zones)*2 != len(tc.expect) {
			t.Error(ix, tc.cidr, "Wrong zone count", len(zones), zones)
			continue
		}
		for zx, z := range zones {
			if z.Name != tc.expect[zx*2] {
				t.Error(ix, zx, tc.cidr, "Name got", z.Name, "expected", tc.expect[zx*2])
			}
			if z.Network.String() != tc.expect[zx*2+1] {
				t.Error(ix, zx, tc.cidr, "Network got", z.Network, "expected", tc.expect[zx*2+1])
			}
		}
	}
}

func TestReverseZoneNamesSlash0(t *testing.T) {
	_, ipNet, _ := net.ParseCIDR("0.0.0.0/0")
	zones, err := ReverseZoneNames(ipNet)
	if err != nil {
		t.Fatal(err)
	}
	if len(zones) != 256 {
		t.Fatal("Expected one zone per /8, got", len(zones))
	}
	if zones[255].Name != "255.in-addr.arpa" || zones[255].Network.String() != "255.0.0.0/8" {
		t.Error("Wrong final zone", zones[255].Name, zones[255].Network)
	}
}

func TestReverseZoneNamesBadMask(t *testing.T) {
	ipNet := &net.IPNet{IP: net.ParseIP("192.0.2.0"), Mask: net.IPMask{0xff, 0, 0xff, 0}}
	_, err := ReverseZoneNames(ipNet)
	if err == nil {
		t.Error("Expected error with a non-canonical mask")
	}
}

func TestDelegationLabel(t *testing.T) {
	testCases := []struct{ input, expect string }{
		{"2.0.192.in-addr.arpa", "2"},
		{"10.in-addr.arpa", "10"},
		{"f.ip6.arpa", "f"},
		{"arpa", "arpa"},
	}
	for ix, tc := range testCases {
		got := DelegationLabel(tc.input)
		if got != tc.expect {
			t.Error(ix, "Input:", tc.input, "Got", got, "Expected", tc.expect)
		}
	}
}

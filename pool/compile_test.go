package pool

import (
	"errors"
	"math/big"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markdingo/dynrev/config"
)

func defaults() config.Fields {
	return config.Fields{
		KeyTTL:        300,
		KeyDNS:        "ns1.example.net",
		KeyEmail:      "hostmaster.example.net",
		KeyNameserver: []any{"ns1.example.net", "ns2.example.net"},
	}
}

func compile(t *testing.T, prefixes ...config.Prefix) *Table {
	t.Helper()
	table, err := Compile(&config.File{Defaults: defaults(), Prefixes: prefixes})
	require.NoError(t, err)
	return table
}

func TestCompileFallback(t *testing.T) {
	table := compile(t,
		config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{
			KeyForward: "Pool.Example.NET.", KeyPrefix: "host-", KeyPostfix: ".dyn", KeyTTL: 60}},
		config.Prefix{CIDR: "2001:db8::/48", Fields: config.Fields{
			KeyForward: "pool6.example.net", KeyDomain: "custom.example.net",
			KeyNameserver: "ns9.example.net"}},
	)
	require.Equal(t, 2, table.Len())

	r := table.Records()[0]
	assert.Equal(t, "192.0.2.0/24", r.Network.String())
	assert.Equal(t, "pool.example.net", r.ForwardZone)
	assert.Equal(t, "2.0.192.in-addr.arpa", r.ReverseDomain)
	assert.Equal(t, "host-", r.HostPrefix)
	assert.Equal(t, ".dyn", r.HostPostfix)
	assert.Equal(t, uint32(60), r.TTL) // Override
	assert.Equal(t, []string{"ns1.example.net", "ns2.example.net"}, r.Nameservers)
	assert.Equal(t, "ns1.example.net", r.PrimaryNS)
	assert.Equal(t, "hostmaster.example.net", r.AdminEmail)
	assert.Equal(t, 4, r.Family)

	r = table.Records()[1]
	assert.Equal(t, "custom.example.net", r.ReverseDomain)
	assert.Equal(t, uint32(300), r.TTL) // Default
	assert.Equal(t, []string{"ns9.example.net"}, r.Nameservers)
	assert.Equal(t, "", r.HostPrefix)
	assert.Equal(t, 6, r.Family)
	assert.Contains(t, table.Dump(), "custom.example.net")
}

func TestCompileIPv6Synthesis(t *testing.T) {
	table := compile(t, config.Prefix{CIDR: "2001:db8:1::/48",
		Fields: config.Fields{KeyForward: "pool6.example.net"}})
	assert.Equal(t, "1.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa", table.Records()[0].ReverseDomain)
}

func TestCompileIPv4Split(t *testing.T) {
	table := compile(t,
		config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "a.example.net"}},
		config.Prefix{CIDR: "10.0.0.0/22", Fields: config.Fields{
			KeyForward: "ten.example.net", KeyPrefix: "pool-", KeyTTL: 30}},
		config.Prefix{CIDR: "198.51.100.0/24", Fields: config.Fields{KeyForward: "b.example.net"}},
	)
	require.Equal(t, 6, table.Len())

	expect := []struct{ network, domain, prefix string }{
		{"192.0.2.0/24", "2.0.192.in-addr.arpa", ""},
		{"10.0.0.0/24", "0.0.10.in-addr.arpa", "pool-0-"},
		{"10.0.1.0/24", "1.0.10.in-addr.arpa", "pool-1-"},
		{"10.0.2.0/24", "2.0.10.in-addr.arpa", "pool-2-"},
		{"10.0.3.0/24", "3.0.10.in-addr.arpa", "pool-3-"},
		{"198.51.100.0/24", "100.51.198.in-addr.arpa", ""},
	}
	for ix, e := range expect {
		r := table.Records()[ix]
		assert.Equal(t, e.network, r.Network.String(), ix)
		assert.Equal(t, e.domain, r.ReverseDomain, ix)
		assert.Equal(t, e.prefix, r.HostPrefix, ix)
	}

	// Children inherit everything else from the parent
	for _, r := range table.Records()[1:5] {
		assert.Equal(t, "ten.example.net", r.ForwardZone)
		assert.Equal(t, uint32(30), r.TTL)
		assert.Equal(t, "ns1.example.net", r.PrimaryNS)
		assert.Equal(t, int64(256), r.Size().Int64())
	}
}

func TestCompileIPv4SplitHostRoutes(t *testing.T) {
	table := compile(t, config.Prefix{CIDR: "192.0.2.4/30",
		Fields: config.Fields{KeyForward: "p.example.net", KeyPrefix: "h"}})
	require.Equal(t, 4, table.Len())
	r := table.Records()[3]
	assert.Equal(t, "192.0.2.7/32", r.Network.String())
	assert.Equal(t, "7.2.0.192.in-addr.arpa", r.ReverseDomain)
	assert.Equal(t, "h7-", r.HostPrefix)
}

func TestCompileExplicitDomainNotSplit(t *testing.T) {
	table := compile(t, config.Prefix{CIDR: "10.0.0.0/22", Fields: config.Fields{
		KeyForward: "ten.example.net", KeyDomain: "ten-rev.example.net."}})
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "ten-rev.example.net", table.Records()[0].ReverseDomain)
}

func TestCompileDefaultDomainNotExplicit(t *testing.T) {
	d := defaults()
	d[KeyDomain] = "rev.example.net"
	table, err := Compile(&config.File{Defaults: d, Prefixes: []config.Prefix{
		{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "a.example.net"}},
		{CIDR: "10.0.0.0/22", Fields: config.Fields{KeyForward: "ten.example.net", KeyPrefix: "p"}},
		{CIDR: "198.51.100.0/24", Fields: config.Fields{KeyForward: "b.example.net", KeyDomain: nil}},
		{CIDR: "203.0.113.0/24", Fields: config.Fields{
			KeyForward: "c.example.net", KeyDomain: "c-rev.example.net"}},
	}})
	require.NoError(t, err)
	require.Equal(t, 7, table.Len())

	expect := []struct{ network, domain string }{
		{"192.0.2.0/24", "2.0.192.in-addr.arpa"},
		{"10.0.0.0/24", "0.0.10.in-addr.arpa"},
		{"10.0.1.0/24", "1.0.10.in-addr.arpa"},
		{"10.0.2.0/24", "2.0.10.in-addr.arpa"},
		{"10.0.3.0/24", "3.0.10.in-addr.arpa"},
		{"198.51.100.0/24", "100.51.198.in-addr.arpa"}, // A null override is not explicit
		{"203.0.113.0/24", "c-rev.example.net"},
	}
	for ix, e := range expect {
		r := table.Records()[ix]
		assert.Equal(t, e.network, r.Network.String(), ix)
		assert.Equal(t, e.domain, r.ReverseDomain, ix)
	}
}

func TestCompileErrors(t *testing.T) {
	testCases := []struct {
		name     string
		defaults config.Fields
		prefix   config.Prefix
		expect   error
	}{
		{"missing forward", defaults(),
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{}}, ErrMissingField},
		{"missing ttl", config.Fields{KeyDNS: "a", KeyEmail: "b", KeyNameserver: "c"},
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "f"}}, ErrMissingField},
		{"null email", config.Fields{KeyTTL: 1, KeyDNS: "a", KeyEmail: nil, KeyNameserver: "c"},
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "f", KeyEmail: nil}},
			ErrMissingField},
		{"empty nameservers", defaults(),
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "f",
				KeyNameserver: []any{}}}, ErrMissingField},
		{"negative ttl", defaults(),
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "f", KeyTTL: -1}},
			ErrInvalidField},
		{"ttl type", defaults(),
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "f", KeyTTL: []any{}}},
			ErrInvalidField},
		{"at in email", defaults(),
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "f",
				KeyEmail: "hostmaster@example.net"}}, ErrInvalidField},
		{"semicolon in prefix", defaults(),
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "f", KeyPrefix: "h;x"}},
			ErrInvalidField},
		{"space in forward", defaults(),
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "pool example.net"}},
			ErrInvalidField},
		{"quote in nameserver", defaults(),
			config.Prefix{CIDR: "192.0.2.0/24", Fields: config.Fields{KeyForward: "f",
				KeyNameserver: []any{"ns1.example.net", `ns"2.example.net`}}}, ErrInvalidField},
		{"ipv6 split", defaults(),
			config.Prefix{CIDR: "2001:db8::/62", Fields: config.Fields{KeyForward: "f"}}, ErrIPv6Split},
	}

	for _, tc := range testCases {
		_, err := Compile(&config.File{Defaults: tc.defaults, Prefixes: []config.Prefix{tc.prefix}})
		assert.True(t, errors.Is(err, tc.expect), "%s: got %v", tc.name, err)
	}

	_, err := Compile(&config.File{Defaults: defaults(),
		Prefixes: []config.Prefix{{CIDR: "192.0.2.0/24", Fields: config.Fields{
			KeyForward: "f", KeyEmail: "hostmaster@example.net"}}}})
	assert.ErrorContains(t, err, "email 'hostmaster@example.net'")

	_, err = Compile(&config.File{Defaults: defaults(),
		Prefixes: []config.Prefix{{CIDR: "192.0.2.300/24", Fields: config.Fields{KeyForward: "f"}}}})
	assert.ErrorContains(t, err, "192.0.2.300/24")
}

func TestMergeNullFallsBack(t *testing.T) {
	m := merge(defaults(), config.Fields{KeyDNS: nil, KeyForward: "f"})
	assert.Equal(t, "ns1.example.net", m[KeyDNS])
	assert.Equal(t, "f", m[KeyForward])
	assert.NotContains(t, defaults(), KeyForward)
}

func TestCompileMissingNamesField(t *testing.T) {
	_, err := Compile(&config.File{Defaults: config.Fields{},
		Prefixes: []config.Prefix{{CIDR: "192.0.2.0/24", Fields: config.Fields{}}}})
	require.Error(t, err)
	for _, key := range []string{KeyForward, KeyTTL, KeyNameserver, KeyDNS, KeyEmail} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestRecordConversions(t *testing.T) {
	table := compile(t, config.Prefix{CIDR: "192.0.2.0/24",
		Fields: config.Fields{KeyForward: "p.example.net", KeyPrefix: "h-", KeyPostfix: "-x"}})
	r := table.Records()[0]

	ip, ok := r.Address(big.NewInt(10))
	assert.True(t, ok)
	assert.Equal(t, "192.0.2.10", ip.String())

	_, ok = r.Address(big.NewInt(256))
	assert.False(t, ok, "Offset beyond the network")

	off, ok := r.Offset(net.ParseIP("192.0.2.255"))
	assert.True(t, ok)
	assert.Equal(t, int64(255), off.Int64())

	_, ok = r.Offset(net.ParseIP("192.0.3.0"))
	assert.False(t, ok)

	assert.Equal(t, "h-a-x.p.example.net", r.Hostname("a"))
	tok, ok := r.Token("h-a-x.p.example.net")
	assert.True(t, ok)
	assert.Equal(t, "a", tok)
	_, ok = r.Token("h-x.p.example.net") // Prefix and suffix overlap
	assert.False(t, ok)
	_, ok = r.Token("a-x.p.example.net")
	assert.False(t, ok)

	b := r.Base() // Copies must not alias the record
	b.SetInt64(0)
	assert.NotEqual(t, int64(0), r.Base().Int64())
}

func TestAsConversions(t *testing.T) {
	n, err := asInt("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)
	_, err = asInt(1.5)
	assert.Error(t, err)
	n, err = asInt(float64(7))
	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)

	s, err := asString(12)
	assert.NoError(t, err)
	assert.Equal(t, "12", s)
	_, err = asString(map[string]any{})
	assert.Error(t, err)

	l, err := asStrings("")
	assert.NoError(t, err)
	assert.Nil(t, l)
}

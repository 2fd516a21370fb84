/*
Package config reads the prefix configuration file into an ordered, untyped structure. The
file has two top-level tables: "defaults", a mapping of field to value, and "prefixes", a
mapping of CIDR to a mapping of per-prefix overrides. For example, in YAML:

    defaults:
      ttl: 300
      dns: ns1.example.net
      email: hostmaster.example.net
      nameserver: [ns1.example.net, ns2.example.net]
    prefixes:
      192.0.2.0/24:
        forward: pool.example.net
        prefix: host-
      2001:db8::/48:
        forward: pool6.example.net

The order of prefixes is significant to forward lookups so both YAML and TOML files are
read in a way which preserves it. Interpretation of the field values is left to the pool
package.
*/
package config

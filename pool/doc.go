/*
Package pool compiles the raw configuration into a Table of fully resolved PrefixRecords.

Every field of a record is resolved by a two-stage merge: the prefix's own value if
present, otherwise the default. A required field absent from both is a fatal configuration
error. Once compiled a record never needs further lookups and is never modified, so a Table
may be read without locks.

When a prefix has no explicit reverse "domain", the reverse zone is synthesized from the
network. An ipv4 network which does not end on an octet boundary is split into one
delegated record per covering reverse zone, each inheriting every field from its parent
but with the network narrowed to the zone and the host prefix extended with the
delegation octet plus DelegationSeparator. An ipv6 network which does not end on a nibble
boundary cannot be split and is rejected.

Expected usage is:

    f, err := config.Load(path)
    table, err := pool.Compile(f)
    for _, rec := range table.Records() {
        ...
    }
*/
package pool

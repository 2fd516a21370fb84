/*
Package backend implements the line oriented pipe backend protocol (ABI version 1) spoken
by the host DNS server with its subprocess backends.

The host first sends a line starting with HELO. Anything else is answered with FAIL and
Run returns a *HandshakeError. Thereafter each line is a query:

    Q <qname> <qclass> <qtype> <id> <remote-ip> [<local-ip>]

with tab separated fields, or "AXFR <id>". Each query is answered with zero or more DATA
lines followed by END:

    DATA <owner> <class> <type> <ttl> <id> <rdata>
    END

An empty line or end of input ends the session.

Forward (A/AAAA) queries are answered by walking the pool.Table in configuration order and
decoding the base36 token of the first record whose naming matches. Reverse (PTR) queries
are answered from the longest-prefix-match database. SOA and NS queries match either apex
of a record. An AXFR returns the SOA and NS records of the zone most recently answered by
an SOA query and nothing else.

The Dispatcher is strictly single threaded and answers queries in arrival order.
*/
package backend

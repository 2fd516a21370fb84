// Copyright (c) 2021, 2022 Mark Delany. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// This file exists so that "go doc github.com/markdingo/dynrev" displays something
// useful.

/*

Package dynrev is a pipe backend for an authoritative DNS server which answers reverse
(PTR) queries and their matching forward (A/AAAA) queries for arbitrarily large address
ranges without any per-address records. Hostnames are synthesized from the base36 encoded
offset of an address within its configured prefix and forward queries are decoded back
into the same address.

The executable is in cmd/dynrev. The packages are:

    base36    offset <-> token codec
    config    ordered YAML and TOML loading
    pool      compilation of prefixes into PrefixRecords
    database  longest-prefix-match index for reverse lookups
    backend   the pipe protocol Dispatcher
    dnsutil   reverse name and RR helpers
    log       leveled logging framed for the pipe protocol

*/
package dynrev

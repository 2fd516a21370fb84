package database

import (
	"errors"
	"fmt"
	"net"

	"github.com/yl2chen/cidranger"

	"github.com/markdingo/dynrev/pool"
)

var ErrDuplicatePrefix = errors.New("duplicate prefix")

// entry satisfies cidranger.RangerEntry and carries the record back out of the trie.
type entry struct {
	network net.IPNet
	record  *pool.PrefixRecord
}

func (t *entry) Network() net.IPNet {
	return t.network
}

// Database is constructed with NewDatabase() or Build().
type Database struct {
	ranger cidranger.Ranger
	seen   map[string]*pool.PrefixRecord
}

// NewDatabase *must* be used to construct an empty database.
func NewDatabase() *Database {
	return &Database{
		ranger: cidranger.NewPCTrieRanger(),
		seen:   make(map[string]*pool.PrefixRecord),
	}
}

// Build creates a database containing every record in table.
func Build(table *pool.Table) (*Database, error) {
	t := NewDatabase()
	for _, rec := range table.Records() {
		err := t.Add(rec)
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Add inserts the record keyed by its network. An error is returned if the network is
// already present.
func (t *Database) Add(rec *pool.PrefixRecord) error {
	key := rec.Network.String()
	if prev, ok := t.seen[key]; ok {
		return fmt.Errorf("%w: %s (forward zones %s and %s)",
			ErrDuplicatePrefix, key, prev.ForwardZone, rec.ForwardZone)
	}
	err := t.ranger.Insert(&entry{network: *rec.Network, record: rec})
	if err != nil {
		return fmt.Errorf("prefix %s: %w", key, err)
	}
	t.seen[key] = rec

	return nil
}

// Lookup returns the record with the most specific network containing ip, or nil.
func (t *Database) Lookup(ip net.IP) *pool.PrefixRecord {
	entries, err := t.ranger.ContainingNetworks(ip)
	if err != nil || len(entries) == 0 {
		return nil
	}

	var best *entry
	bestOnes := -1
	for _, re := range entries {
		e, ok := re.(*entry)
		if !ok {
			continue
		}
		ones, _ := e.network.Mask.Size()
		if ones > bestOnes {
			best, bestOnes = e, ones
		}
	}
	if best == nil {
		return nil
	}

	return best.record
}

// Count returns the number of networks in the database.
func (t *Database) Count() int {
	return t.ranger.Len()
}

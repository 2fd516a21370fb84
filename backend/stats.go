package backend

import (
	"fmt"
	"sort"

	"github.com/markdingo/dynrev/log"
)

// qTypeStats tracks activity per query type.
type qTypeStats struct {
	queries int
	answers int // Total DATA lines of this type
}

func (t *qTypeStats) String() string {
	return fmt.Sprintf("q=%d a=%d", t.queries, t.answers)
}

// stats accumulates session counters which are reported when the session ends.
type stats struct {
	lines      int // Query lines, including malformed and AXFR
	malformed  int
	axfr       int
	decodeMiss int // Forward tokens which were not base36
	outOfRange int // Forward tokens beyond the network

	invertError int // Reverse qNames which did not reconstruct
	noMatch     int // Reverse queries not covered by any prefix

	byType map[string]*qTypeStats
}

func newStats() stats {
	return stats{byType: make(map[string]*qTypeStats)}
}

func (t *stats) get(qType string) *qTypeStats {
	s, ok := t.byType[qType]
	if !ok {
		s = &qTypeStats{}
		t.byType[qType] = s
	}

	return s
}

func (t *stats) query(qType string) {
	t.get(qType).queries++
}

func (t *stats) answer(rrType string) {
	t.get(rrType).answers++
}

func (t *stats) String() string {
	return fmt.Sprintf("lines=%d bad=%d axfr=%d decodeMiss=%d range=%d invErr=%d noMatch=%d",
		t.lines, t.malformed, t.axfr, t.decodeMiss, t.outOfRange, t.invertError, t.noMatch)
}

// report logs the session counters with per-type counters in alphabetical order.
func (t *stats) report() {
	if !log.IfInfo() {
		return
	}
	log.Info("Stats: ", t.String())
	keys := make([]string, 0, len(t.byType))
	for k := range t.byType {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		log.Infof("Stats %s: %s", k, t.byType[k])
	}
}

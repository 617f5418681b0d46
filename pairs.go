package peerdisc

import (
	"strings"
)

// Pair is a single key/value entry decoded from an environment-supplied
// structure.
type Pair struct {
	Key   string
	Value string
}

// Pairs represents an ordered list of key/value pairs. It is the canonical
// shape for optional, environment-derived data such as node tags; producers
// must be able to degrade to an empty Pairs rather than fail.
type Pairs []Pair

// String returns a comma-separated "key=value" rendering of the pairs.
func (p Pairs) String() string {
	entries := make([]string, len(p))
	for i, pair := range p {
		entries[i] = pair.Key + "=" + pair.Value
	}
	return strings.Join(entries, ",")
}

// ToMap converts the pairs to a map. Later entries win on duplicate keys.
func (p Pairs) ToMap() map[string]string {
	m := make(map[string]string, len(p))
	for _, pair := range p {
		m[pair.Key] = pair.Value
	}
	return m
}

// Copy returns a copy of the Pairs.
func (p Pairs) Copy() Pairs {
	if p == nil {
		return nil
	}
	pairsCopy := make(Pairs, len(p))
	copy(pairsCopy, p)
	return pairsCopy
}

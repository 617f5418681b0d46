package peerdisc

import (
	"errors"
	"strings"
)

// ErrNoHost is returned when the host fragment is requested from a node
// name that carries no "@". A resolved name always carries one, so hitting
// this indicates a logic error upstream rather than bad user input.
var ErrNoHost = errors.New("node name has no host fragment")

// NodeName is a cluster node identifier of the form "prefix@host". The
// prefix names the clustering application, the host fragment is an IPv4
// address, a fully qualified hostname, or a short hostname depending on
// how the name was resolved.
type NodeName string

// Prefix returns the text before the first "@", or the whole name if there
// is none.
func (n NodeName) Prefix() string {
	return strings.SplitN(string(n), "@", 2)[0]
}

// Host returns the text after the first "@".
func (n NodeName) Host() (string, error) {
	parts := strings.SplitN(string(n), "@", 2)
	if len(parts) != 2 {
		return "", ErrNoHost
	}
	return parts[1], nil
}

// String returns the name unchanged.
func (n NodeName) String() string {
	return string(n)
}

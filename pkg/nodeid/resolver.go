// Package nodeid resolves the canonical "prefix@host" identity under which
// a process joins the cluster. An incorrect identity silently splits the
// cluster or fails the join, so anything that would require fabricating
// part of the name is surfaced as an error instead of defaulted.
package nodeid

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/atlassian/peerdisc"
)

// ErrMissingNodeName is returned when identity resolution needs the
// configured node name and none is set.
var ErrMissingNodeName = errors.New("node name is not configured")

// Config carries the configuration snapshot consumed during one identity
// resolution. It is constructed once at startup and passed down; the
// resolver never reaches for ambient process state.
type Config struct {
	// Backend is the configured peer discovery backend name.
	Backend string
	// UseLongname keeps the fully qualified hostname in resolved
	// identities instead of shortening it to the first label.
	UseLongname bool
	// NodeName is the configured node name, e.g. "rabbit@localhost". Only
	// its prefix participates in resolution.
	NodeName string
}

// BackendValue returns the configured backend name as a coercible value,
// absent when no backend is configured. It is the value the discovery
// selector consumes.
func (c *Config) BackendValue() peerdisc.Value {
	if c.Backend == "" {
		return peerdisc.None()
	}
	return peerdisc.Symbol(c.Backend)
}

// Resolver derives node identities from raw hints and a Config.
type Resolver struct {
	logger logrus.FieldLogger
	config *Config
}

// NewResolver returns a Resolver over the given configuration snapshot.
func NewResolver(logger logrus.FieldLogger, config *Config) *Resolver {
	return &Resolver{
		logger: logger,
		config: config,
	}
}

// NodeName resolves raw into the final node identity. A hint that already
// carries "@" is a complete identifier and is returned verbatim; otherwise
// the host fragment is derived from the hint and the prefix from the
// configured node name.
func (r *Resolver) NodeName(raw peerdisc.Value) (peerdisc.NodeName, error) {
	text, err := peerdisc.ToText(raw)
	if err != nil {
		// Advisory path: the hint passes through unchanged and the
		// remaining stages work with whatever text came out.
		r.logger.WithError(err).WithField("value", raw).Error("Unable to normalize node name hint")
	}
	if strings.Contains(text, "@") {
		return peerdisc.NodeName(text), nil
	}
	prefix, err := r.prefix()
	if err != nil {
		return "", err
	}
	return peerdisc.NodeName(prefix + "@" + r.HostFragment(text)), nil
}

// HostFragment derives the host portion of an identity from text. IPv4
// literals and fully qualified names in longname mode pass unchanged;
// otherwise the leftmost dot-delimited label is taken, which is also the
// identity on single-label hostnames.
func (r *Resolver) HostFragment(text string) string {
	if isIPv4(text) {
		return text
	}
	if r.config.UseLongname {
		return text
	}
	return strings.SplitN(text, ".", 2)[0]
}

// prefix returns the clustering prefix from the configured node name,
// ignoring any host fragment it already carries.
func (r *Resolver) prefix() (string, error) {
	if r.config.NodeName == "" {
		return "", fmt.Errorf("%w: %s must be set", ErrMissingNodeName, ParamNodeName)
	}
	return peerdisc.NodeName(r.config.NodeName).Prefix(), nil
}

// isIPv4 reports whether s is a literal dotted quad. IPv6 and IPv4-mapped
// forms do not count; they would not survive the "@" joining rules.
func isIPv4(s string) bool {
	if strings.Count(s, ".") != 3 || strings.Contains(s, ":") {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

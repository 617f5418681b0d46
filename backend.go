package peerdisc

// Backend identifies a peer discovery backend implementation. The set is
// closed; this core treats the identifiers as opaque tokens and never
// invokes the backends themselves.
type Backend string

const (
	// BackendNone means no discovery backend is configured. Unrecognized
	// backend names map here rather than erroring, signalling that
	// discovery is disabled.
	BackendNone Backend = "none"
	// BackendAWS discovers peers through the EC2 API.
	BackendAWS Backend = "aws"
	// BackendConsul discovers peers through a Consul catalog.
	BackendConsul Backend = "consul"
	// BackendDNS discovers peers through DNS records.
	BackendDNS Backend = "dns"
	// BackendEtcd discovers peers through an etcd key space.
	BackendEtcd Backend = "etcd"
	// BackendKubernetes discovers peers through the Kubernetes API.
	BackendKubernetes Backend = "k8s"
)

// String returns the backend identifier.
func (b Backend) String() string {
	return string(b)
}

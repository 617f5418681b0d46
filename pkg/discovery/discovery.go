// Package discovery maps the configured backend name to one of the known
// peer discovery backend identifiers. The backends themselves live outside
// this module; the identifiers returned here are handed to them opaquely.
package discovery

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/atlassian/peerdisc"
	"github.com/atlassian/peerdisc/internal/util"
)

// All registered discovery backends.
var backends = map[string]peerdisc.Backend{
	"aws":    peerdisc.BackendAWS,
	"consul": peerdisc.BackendConsul,
	"dns":    peerdisc.BackendDNS,
	"etcd":   peerdisc.BackendEtcd,
	"k8s":    peerdisc.BackendKubernetes,
}

// Module selects the backend for a configured name. Unknown names,
// including an absent value, select BackendNone: discovery is disabled
// rather than failing, since a cluster of one is a valid deployment.
func Module(logger logrus.FieldLogger, name peerdisc.Value) peerdisc.Backend {
	sym, err := peerdisc.ToSymbol(name)
	if err != nil {
		if !name.IsNone() {
			logger.WithError(err).WithField("value", name).Error("Unable to normalize backend name")
		}
		return peerdisc.BackendNone
	}
	text, _ := peerdisc.ToText(sym) // symbols always flatten
	b, found := backends[text]
	if !found {
		logger.WithField("backend", text).Debug("No discovery backend configured")
		return peerdisc.BackendNone
	}
	return b
}

// Sub returns the configuration subsection reserved for the selected
// backend module, e.g. "peer-discovery-aws".
func Sub(v *viper.Viper, backend peerdisc.Backend) *viper.Viper {
	return util.GetSubViper(v, "peer-discovery-"+backend.String())
}

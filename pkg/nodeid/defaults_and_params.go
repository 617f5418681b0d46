package nodeid

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultBackend is the default peer discovery backend. Empty means
	// discovery is disabled.
	DefaultBackend = ""
	// DefaultUseLongname is the default for fully qualified node names.
	DefaultUseLongname = false
	// DefaultNodeName is the default configured node name. There is no
	// usable default; resolution fails until it is set.
	DefaultNodeName = ""
)

const (
	// ParamBackend is the name of parameter with the peer discovery backend.
	ParamBackend = "backend"
	// ParamUseLongname is the name of parameter controlling whether node
	// identities keep the fully qualified hostname.
	ParamUseLongname = "use-longname"
	// ParamNodeName is the name of parameter with the configured node name
	// whose prefix seeds resolved identities.
	ParamNodeName = "node-name"
)

// AddFlags adds the identity resolution flags to the specified FlagSet.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ParamBackend, DefaultBackend, "Name of the peer discovery backend to consult")
	fs.Bool(ParamUseLongname, DefaultUseLongname, "Keep the fully qualified hostname in the node identity")
	fs.String(ParamNodeName, DefaultNodeName, "Configured node name; its prefix names the cluster application")
}

// NewConfigFromViper reads the identity resolution configuration.
func NewConfigFromViper(v *viper.Viper) *Config {
	v.SetDefault(ParamBackend, DefaultBackend)
	v.SetDefault(ParamUseLongname, DefaultUseLongname)
	v.SetDefault(ParamNodeName, DefaultNodeName)
	return &Config{
		Backend:     v.GetString(ParamBackend),
		UseLongname: v.GetBool(ParamUseLongname),
		NodeName:    v.GetString(ParamNodeName),
	}
}

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/atlassian/peerdisc"
	"github.com/atlassian/peerdisc/internal/util"
	"github.com/atlassian/peerdisc/pkg/discovery"
	"github.com/atlassian/peerdisc/pkg/nics"
	"github.com/atlassian/peerdisc/pkg/nodeid"
	"github.com/atlassian/peerdisc/pkg/props"
)

var (
	// BuildDate is the date when the binary was built.
	BuildDate string
	// GitCommit is the commit hash when the binary was built.
	GitCommit string
	// Version is the version of the binary.
	Version string
)

const (
	// ParamVerbose enables verbose logging.
	ParamVerbose = "verbose"
	// ParamJSON makes logger log in JSON format.
	ParamJSON = "json"
	// ParamConfigPath provides file with configuration.
	ParamConfigPath = "config-path"
	// ParamVersion makes program output its version.
	ParamVersion = "version"
	// ParamNode provides the raw node name hint; defaults to the OS hostname.
	ParamNode = "node"
	// ParamTags provides a JSON object with advisory node tags.
	ParamTags = "tags"
)

func main() {
	v, version, err := setupConfiguration()
	if err != nil {
		if err == pflag.ErrHelp {
			return
		}
		log.Fatalf("Error while parsing configuration: %v", err)
	}
	if version {
		fmt.Printf("Version: %s - Commit: %s - Date: %s\n", Version, GitCommit, BuildDate)
		return
	}

	logger := log.StandardLogger()

	raw := v.GetString(ParamNode)
	if raw == "" {
		hostname, errHost := nics.Hostname()
		if errHost != nil {
			log.Fatalf("Error querying hostname: %v", errHost)
		}
		raw = hostname
	}

	config := nodeid.NewConfigFromViper(v)
	resolver := nodeid.NewResolver(logger, config)
	name, err := resolver.NodeName(peerdisc.Text(raw))
	if err != nil {
		log.Fatalf("Error resolving node identity: %v", err)
	}

	backend := discovery.Module(logger, config.BackendValue())
	if backend != peerdisc.BackendNone {
		// The backend module consumes its own config section; selection
		// only hands the token and the section over.
		logger.WithFields(log.Fields{
			"backend":  backend,
			"settings": discovery.Sub(v, backend).AllSettings(),
		}).Debug("Selected discovery backend")
	}

	tags := props.Decode(logger, v.GetString(ParamTags))
	logger.WithFields(log.Fields{
		"node":    name,
		"backend": backend,
		"tags":    tags.String(),
	}).Info("Resolved node identity")

	fmt.Println(name)
}

func setupConfiguration() (*viper.Viper, bool, error) {
	v := viper.New()
	util.InitViper(v, "")

	var version bool

	cmd := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)

	cmd.BoolVar(&version, ParamVersion, false, "Print the version and exit")
	cmd.Bool(ParamVerbose, false, "Verbose")
	cmd.Bool(ParamJSON, false, "Log in JSON format")
	cmd.String(ParamConfigPath, "", "Path to the configuration file")
	cmd.String(ParamNode, "", "Raw node name hint; defaults to the OS hostname")
	cmd.String(ParamTags, "", "JSON object with advisory node tags")

	nodeid.AddFlags(cmd)

	cmd.VisitAll(func(flag *pflag.Flag) {
		if err := v.BindPFlag(flag.Name, flag); err != nil {
			panic(err) // Should never happen
		}
	})

	setupLogger(v) // setup logger from environment vars and flag defaults

	if err := cmd.Parse(os.Args[1:]); err != nil {
		return nil, false, err
	}

	setupLogger(v) // update logger with config from command line flags

	configPath := v.GetString(ParamConfigPath)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, false, err
		}
	}

	setupLogger(v) // finally update logger with vars from config

	return v, version, nil
}

func setupLogger(v *viper.Viper) {
	if v.GetBool(ParamVerbose) {
		log.SetLevel(log.DebugLevel)
	}
	if v.GetBool(ParamJSON) {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

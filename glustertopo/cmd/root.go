package cmd

import (
	"strings"
	"time"

	"github.com/cholcombe973/charms.gluster/pkg/gluster"
	"github.com/cholcombe973/charms.gluster/pkg/logging"
	"github.com/cholcombe973/charms.gluster/pkg/metrics"
	"github.com/cholcombe973/charms.gluster/pkg/resolver"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix   = "GLUSTERTOPO"
	defaultConf = "glustertopo"

	keyBinary         = "gluster-bin"
	keySudo           = "sudo"
	keyFormat         = "format"
	keyResolveTimeout = "resolve-timeout"
	keyMetricsFile    = "metrics-file"
)

// Config file search path when --config is not given
var defaultConfPaths = []string{
	"/etc/glustertopo",
	".",
}

// RootCmd represents main command
var RootCmd = &cobra.Command{
	Use:          "glustertopo",
	Short:        "Inspect gluster pool, volume and quota topology",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(flagConfig); err != nil {
			return err
		}
		err := logging.Init(config.GetString(logging.DirFlag), config.GetString(logging.FileFlag),
			config.GetString(logging.LevelFlag), config.GetBool(logging.SourceFlag))
		if err != nil {
			return err
		}
		dumpConfigToLog()
		return nil
	},
}

var (
	config = viper.New()

	flagConfig     string
	flagJSONOutput bool
	flagInput      string
	flagPool       string
	verbose        bool
)

func init() {
	pf := RootCmd.PersistentFlags()

	pf.StringVar(&flagConfig, "config", "", "Configuration file. By default looks for glustertopo.(yaml|toml|json) in /etc/glustertopo and current working directory")
	pf.BoolVar(&flagJSONOutput, "json", false, "JSON Output")
	pf.StringVarP(&flagInput, "input", "i", "", "Parse gluster output captured in this file instead of running gluster")
	pf.StringVar(&flagPool, "pool", "", "Captured pool list output used to match bricks to peers with --input")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	pf.String(keyBinary, gluster.DefaultBinary, "gluster command line tool")
	pf.Bool(keySudo, false, "Run gluster through sudo")
	pf.String(keyFormat, "xml", "Output form requested from gluster: xml or text")
	pf.Duration(keyResolveTimeout, resolver.DefaultTimeout, "Timeout of a single hostname lookup")
	pf.String(keyMetricsFile, "", "Write command and parser counters to this file on exit")

	// Log options
	pf.String(logging.DirFlag, "", logging.DirHelp)
	pf.String(logging.FileFlag, logging.DefaultFile, logging.FileHelp)
	pf.String(logging.LevelFlag, logging.DefaultLevel, logging.LevelHelp)
	pf.Bool(logging.SourceFlag, false, logging.SourceHelp)

	bindFlags(pf, keyBinary, keySudo, keyFormat, keyResolveTimeout, keyMetricsFile,
		logging.DirFlag, logging.FileFlag, logging.LevelFlag, logging.SourceFlag)

	cobra.OnFinalize(writeMetrics)

	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
}

// bindFlags backs each config key with the flag of the same name. An
// explicitly set flag wins over the environment and the config file.
func bindFlags(fs *flag.FlagSet, keys ...string) {
	for _, key := range keys {
		if err := config.BindPFlag(key, fs.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads the configuration file. A missing default file is not an
// error; a missing or broken explicit file is.
func initConfig(confFile string) error {
	if confFile == "" {
		config.SetConfigName(defaultConf)
		for _, p := range defaultConfPaths {
			config.AddConfigPath(p)
		}
	} else {
		config.SetConfigFile(confFile)
	}

	if err := config.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && confFile == "" {
			log.WithError(err).Debug("no config file found, continuing with defaults")
			return nil
		}
		return err
	}
	return nil
}

func dumpConfigToLog() {
	l := log.NewEntry(log.StandardLogger())
	for k, v := range config.AllSettings() {
		l = l.WithField(k, v)
	}
	l.WithField("config", config.ConfigFileUsed()).Debug("running with configuration")
}

func writeMetrics() {
	path := config.GetString(keyMetricsFile)
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		log.WithError(err).WithField("path", path).Warn("failed to write metrics")
	}
}

func resolveTimeout() time.Duration {
	if d := config.GetDuration(keyResolveTimeout); d > 0 {
		return d
	}
	return resolver.DefaultTimeout
}

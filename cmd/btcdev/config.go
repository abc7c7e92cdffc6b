package main

import (
	"github.com/tobysharp/btcdev/config"
	"github.com/tobysharp/btcdev/params"
	"github.com/urfave/cli/v2"
)

var (
	conf = config.Default()

	ConfigFile = &cli.StringFlag{
		Name:        "configfile",
		Aliases:     []string{"C"},
		Usage:       "Path to configuration file",
		Destination: &conf.ConfigFile,
	}
	Network = &cli.StringFlag{
		Name:        "network",
		Aliases:     []string{"n"},
		Usage:       "Network {mainnet,testnet,regnet}",
		Value:       params.MainNetParams.Name,
		Destination: &conf.Network,
	}
	DebugLevel = &cli.StringFlag{
		Name:        "debuglevel",
		Aliases:     []string{"d"},
		Usage:       "Logging level {trace, debug, info, warn, error, crit}",
		Value:       conf.DebugLevel,
		Destination: &conf.DebugLevel,
	}
	LogFile = &cli.StringFlag{
		Name:        "logfile",
		Usage:       "Also write the log to this file, rotated",
		Destination: &conf.LogFile,
	}
	Metrics = &cli.BoolFlag{
		Name:        "metrics",
		Usage:       "Collect signing metrics and print them on exit",
		Destination: &conf.Metrics,
	}
	Details = &cli.BoolFlag{
		Name:        "details",
		Usage:       "Print results as a detailed table",
		Destination: &conf.Details,
	}

	AppFlags = []cli.Flag{
		ConfigFile,
		Network,
		DebugLevel,
		LogFile,
		Metrics,
		Details,
	}
)

// loadConfig fills the options not given on the command line from the
// config file, then applies the result.
func loadConfig(c *cli.Context) error {
	if conf.ConfigFile != "" {
		fileCfg := config.Default()
		if err := config.ParseFile(fileCfg, conf.ConfigFile); err != nil {
			return err
		}
		if !c.IsSet(Network.Name) {
			conf.Network = fileCfg.Network
		}
		if !c.IsSet(DebugLevel.Name) {
			conf.DebugLevel = fileCfg.DebugLevel
		}
		if !c.IsSet(LogFile.Name) {
			conf.LogFile = fileCfg.LogFile
		}
		if !c.IsSet(Metrics.Name) {
			conf.Metrics = fileCfg.Metrics
		}
		if !c.IsSet(Details.Name) {
			conf.Details = fileCfg.Details
		}
	}
	return conf.Apply()
}

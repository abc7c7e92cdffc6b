// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package config holds the settings shared by every btcdev command and
// loads them from the command line and an optional INI file.
package config

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/tobysharp/btcdev/log"
	"github.com/tobysharp/btcdev/metrics"
	"github.com/tobysharp/btcdev/params"
)

const (
	defaultNetwork    = "mainnet"
	defaultDebugLevel = "info"
)

type Config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	Network    string `short:"n" long:"network" description:"Network for addresses and private keys {mainnet, testnet, regnet}"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, crit}"`
	LogFile    string `long:"logfile" description:"Also write the log to this file, rotated"`
	Metrics    bool   `long:"metrics" description:"Collect and print signing metrics"`
	Details    bool   `long:"details" description:"Print results as a detailed table"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Network:    defaultNetwork,
		DebugLevel: defaultDebugLevel,
	}
}

// Load initializes and parses the config using a config file and command
// line options. Arguments go-flags does not recognize are returned for the
// caller.
func Load(args []string) (*Config, []string, error) {
	cfg := Default()

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error
	// can be ignored here since they will be caught by the final parse
	// below.
	preCfg := *cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	// Load additional config from file.
	parser := flags.NewParser(cfg, flags.IgnoreUnknown)
	if preCfg.ConfigFile != "" {
		if err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile); err != nil {
			return nil, nil, fmt.Errorf("error parsing config file: %v", err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, remainingArgs, nil
}

// ParseFile reads INI options from path into cfg.
func ParseFile(cfg *Config, path string) error {
	parser := flags.NewParser(cfg, flags.IgnoreUnknown)
	if err := flags.NewIniParser(parser).ParseFile(path); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return fmt.Errorf("config file %s: %v", path, err)
		}
		return fmt.Errorf("error parsing config file: %v", err)
	}
	return nil
}

// Validate checks the network name and the log level.
func (c *Config) Validate() error {
	if _, err := params.ByName(c.Network); err != nil {
		return err
	}
	if _, err := log.LvlFromString(c.DebugLevel); err != nil {
		return fmt.Errorf("invalid debuglevel %q: %v", c.DebugLevel, err)
	}
	return nil
}

// Apply makes the configuration take effect: it selects the active
// network, sets the log level, opens the log file and enables metrics.
func (c *Config) Apply() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := params.SetActive(c.Network); err != nil {
		return err
	}
	if err := log.SetLogLevel(c.DebugLevel); err != nil {
		return err
	}
	if c.LogFile != "" {
		if err := log.InitLogRotator(c.LogFile); err != nil {
			return err
		}
	}
	if c.Metrics {
		metrics.Enabled = true
	}
	log.Debug("Configuration applied", "network", c.Network, "level", c.DebugLevel)
	return nil
}

// Net returns the parameters of the configured network.
func (c *Config) Net() *params.Params {
	p, err := params.ByName(c.Network)
	if err != nil {
		return params.ActiveNetParams
	}
	return p
}

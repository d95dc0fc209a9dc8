package main

import (
	"fmt"
	"os"

	"github.com/parlife/go-life/utils"
)

const (
	configFile = "config.json"

	exitFatal = 1
	exitUsage = 2
)

// loadRunConfig merges the optional JSON config file with the three required
// positional arguments. Snapshot behaviour comes from config.json when
// present; a missing or unreadable file just means defaults. Bad arguments
// abort with a usage diagnostic before anything is allocated.
func loadRunConfig(args []string) utils.Config {
	cfg, err := utils.LoadConfig(configFile)
	if err != nil {
		cfg = utils.DefaultConfig()
	}

	if err := cfg.ParseArgs(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\nUsage: %s ArraySize Generations pattern-file\n", err, os.Args[0])
		os.Exit(exitUsage)
	}

	return cfg
}

// fatal reports a terminal error with its cause chain and aborts the process
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "gameoflife: %+v\n", err)
	os.Exit(exitFatal)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minichain/minichain/util"
	"github.com/minichain/minichain/version"

	"github.com/jessevdk/go-flags"
)

const (
	defaultLogFilename    = "atm.log"
	defaultErrLogFilename = "atm_err.log"

	defaultCashInside = 200
)

var (
	// Default configuration options
	defaultHomeDir    = util.AppDataDir("atm", false)
	defaultLogFile    = filepath.Join(defaultHomeDir, defaultLogFilename)
	defaultErrLogFile = filepath.Join(defaultHomeDir, defaultErrLogFilename)
)

type configFlags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	CashInside  uint64 `short:"c" long:"cash" description:"Amount of cash loaded into the machine"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		CashInside: defaultCashInside,
	}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	initLog(defaultLogFile, defaultErrLogFile)

	return cfg, nil
}

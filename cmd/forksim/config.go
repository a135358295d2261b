package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/minichain/minichain/infrastructure/logger"
	"github.com/minichain/minichain/util"
	"github.com/minichain/minichain/version"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultLogFilename    = "forksim.log"
	defaultErrLogFilename = "forksim_err.log"
	defaultLogLevel       = "info"

	defaultPrefixBlocks     = 2
	defaultLightBlocks      = 8
	defaultMinedBlocks      = 5
	defaultThresholdDivisor = 1000
)

var (
	// Default configuration options
	defaultHomeDir    = util.AppDataDir("forksim", false)
	defaultLogFile    = filepath.Join(defaultHomeDir, defaultLogFilename)
	defaultErrLogFile = filepath.Join(defaultHomeDir, defaultErrLogFilename)
)

type configFlags struct {
	ShowVersion      bool   `short:"V" long:"version" description:"Display version information and exit"`
	PrefixBlocks     uint64 `long:"prefixblocks" description:"Number of shared blocks both forks extend"`
	LightBlocks      uint64 `short:"n" long:"lightblocks" description:"Number of blocks in the light fork. Light blocks are not mined."`
	MinedBlocks      uint64 `short:"m" long:"minedblocks" description:"Number of blocks in the mined fork. Every mined header hashes below the mining threshold."`
	ThresholdDivisor uint64 `long:"threshold-divisor" description:"Divisor for the mining threshold. Mined headers must hash below the maximum 64-bit value divided by this. Larger values take longer to mine."`
	DebugLevel       string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	Profile          string `long:"profile" description:"Enable HTTP profiling on given port -- NOTE port must be between 1024 and 65536"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		PrefixBlocks:     defaultPrefixBlocks,
		LightBlocks:      defaultLightBlocks,
		MinedBlocks:      defaultMinedBlocks,
		ThresholdDivisor: defaultThresholdDivisor,
		DebugLevel:       defaultLogLevel,
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

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", logger.SupportedSubsystems())
		os.Exit(0)
	}

	if cfg.ThresholdDivisor == 0 {
		return nil, errors.New("--threshold-divisor must be greater than zero")
	}
	if cfg.LightBlocks == 0 && cfg.MinedBlocks == 0 {
		return nil, errors.New("at least one of --lightblocks and --minedblocks must be greater than zero")
	}

	if cfg.Profile != "" {
		profilePort, err := strconv.Atoi(cfg.Profile)
		if err != nil || profilePort < 1024 || profilePort > 65535 {
			return nil, errors.New("The profile port must be between 1024 and 65535")
		}
	}

	// Initialize log rotation. After log rotation has been initialized, the
	// logger variables may be used.
	logger.InitLog(defaultLogFile, defaultErrLogFile)

	// Parse, validate, and set debug log level(s).
	err = logger.ParseAndSetDebugLevels(cfg.DebugLevel)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

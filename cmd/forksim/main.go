package main

import (
	"fmt"
	"os"

	"github.com/minichain/minichain/infrastructure/os/signal"
	"github.com/minichain/minichain/util/panics"
	"github.com/minichain/minichain/util/profiling"
	"github.com/minichain/minichain/version"

	"github.com/pkg/errors"
)

func main() {
	defer panics.HandlePanic(log, nil)
	interrupt := signal.InterruptListener()

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	// Show version at startup.
	log.Infof("Version %s", version.Version())

	// Enable http profiling server if requested.
	if cfg.Profile != "" {
		profiling.Start(cfg.Profile, log)
	}

	doneChan := make(chan struct{})
	spawn(func() {
		err := simulate(cfg)
		if err != nil {
			panic(errors.Wrap(err, "Error in fork simulation"))
		}
		doneChan <- struct{}{}
	})

	select {
	case <-doneChan:
	case <-interrupt:
	}
}

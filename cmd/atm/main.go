package main

import (
	"fmt"
	"os"

	"github.com/minichain/minichain/util/panics"
	"github.com/minichain/minichain/version"
)

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	log.Infof("Version %s", version.Version())

	err = runSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running the teller session: %s\n", err)
		os.Exit(1)
	}
}

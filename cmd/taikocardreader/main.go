// Command taikocardreader stands in for the native host process that
// used to load the agent as a DLL: it calls pluginapi.Init, blocks until
// asked to stop, then calls pluginapi.Exit.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/S-Sebb/TaikoSmartCardReader/internal/agentlog"
	"github.com/S-Sebb/TaikoSmartCardReader/pluginapi"
)

func main() {
	app := &cli.App{
		Name:  "taikocardreader",
		Usage: "watch a PC/SC reader and publish decoded arcade card access codes",
		Action: func(c *cli.Context) error {
			return run()
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "taikocardreader: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	pluginapi.Init()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	agentlog.Info("shutdown requested")
	pluginapi.Exit()
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var commands = []*cli.Command{
	&SetupCmd,
	&CommitCmd,
	&ProveCmd,
	&VerifyCmd,
	&DemoCmd,
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "kzg10",
		Usage: "commit to polynomials and create and verify KZG opening proofs",
		Flags: []cli.Flag{
			&verboseFlag,
			&goRoutinesFlag,
		},
		Before: func(c *cli.Context) error {
			logger, err := newLogger(c.Bool(verboseFlag.Name))
			if err != nil {
				return err
			}
			c.App.Metadata = map[string]interface{}{loggerKey: logger}
			return nil
		},
		After: func(c *cli.Context) error {
			if logger, ok := c.App.Metadata[loggerKey].(*zap.Logger); ok {
				// Sync fails on some terminals, there is nothing to flush there
				_ = logger.Sync()
			}
			return nil
		},
		Commands: commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

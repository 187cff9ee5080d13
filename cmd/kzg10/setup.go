package main

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var SetupCmd = cli.Command{
	Action: doSetup,
	Name:   "setup",
	Usage:  "generate a trusted setup and write it to a JSON file",
	Flags: []cli.Flag{
		&maxDegreeFlag,
		&seedFlag,
		&outFlag,
	},
}

func doSetup(c *cli.Context) error {
	logger := loggerFrom(c)

	ctx, err := newContext(c, logger)
	if err != nil {
		return err
	}

	path := c.String(outFlag.Name)
	if err := writeTrustedSetup(path, ctx.ExportTrustedSetup()); err != nil {
		return err
	}

	logger.Info("wrote trusted setup", zap.String("path", path), zap.Int("max_degree", ctx.MaxDegree()))
	return nil
}

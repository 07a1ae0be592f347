package main

import (
	"os"

	"github.com/alecthomas/kong"
)

const appName = "htbench"

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name(appName),
		kong.Description("Fill a chained hash table with generated keys and report how it grew."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(os.Stderr, cli.LogLevel)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(cli.Run(os.Stdout, logger))
}

// Command rulematch validates messages against numbered grammar rules.
package main

import (
	"github.com/alecthomas/kong"
)

var version = "dev"

func options() []kong.Option {
	return []kong.Option{
		kong.Name("rulematch"),
		kong.Description(`Validate messages against numbered grammar rules.`),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	}
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli, options()...)
	err := kctx.Run(newRunContext(kctx.Stdout, kctx.Stderr, &cli.Globals))
	kctx.FatalIfErrorf(err)
}

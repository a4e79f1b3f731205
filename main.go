package main

import (
	"log"
	"os"

	"github.com/verstamp/verstamp/buildinfo"
	"github.com/verstamp/verstamp/comm"
	"github.com/verstamp/verstamp/mansion"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var app = kingpin.New("verstamp", "Your very own VERSIONINFO stamping helper")

var appArgs = struct {
	json       *bool
	quiet      *bool
	verbose    *bool
	timestamps *bool
	panic      *bool
}{
	app.Flag("json", "Enable machine-readable JSON-lines output").Short('j').Bool(),
	app.Flag("quiet", "Hide non-essential output").Short('q').Bool(),
	app.Flag("verbose", "Display as much extra info as possible").Short('v').Bool(),
	app.Flag("timestamps", "Prefix all output by timestamps (for logging purposes)").Bool(),
	app.Flag("panic", "Panic on error instead of just printing it").Hidden().Bool(),
}

func main() {
	app.HelpFlag.Short('h')
	app.Version(buildinfo.VersionString)
	app.VersionFlag.Short('V')

	ctx := mansion.NewContext(app)
	registerCommands(ctx)

	cmd, err := app.Parse(os.Args[1:])
	if *appArgs.timestamps {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	} else {
		log.SetFlags(0)
	}

	ctx.Version = buildinfo.Version
	ctx.VersionString = buildinfo.VersionString
	ctx.Quiet = *appArgs.quiet
	ctx.Verbose = *appArgs.verbose
	ctx.JSON = *appArgs.json

	comm.Configure(ctx.Quiet, ctx.Verbose, ctx.JSON, *appArgs.panic)

	fullCmd := kingpin.MustParse(cmd, err)
	do, ok := ctx.Commands[fullCmd]
	if !ok {
		comm.Dief("unknown command: %s", fullCmd)
	}
	do(ctx)
}

package main

import (
	"github.com/verstamp/verstamp/cmd/build"
	"github.com/verstamp/verstamp/cmd/charsets"
	"github.com/verstamp/verstamp/cmd/filetime"
	"github.com/verstamp/verstamp/cmd/langs"
	"github.com/verstamp/verstamp/cmd/version"
	"github.com/verstamp/verstamp/mansion"
)

// Each command specifies its own arguments and flags in
// its own package.
func registerCommands(ctx *mansion.Context) {
	// documented commands

	build.Register(ctx)
	langs.Register(ctx)
	charsets.Register(ctx)
	version.Register(ctx)

	// hidden commands

	filetime.Register(ctx)
}

package version

import (
	"log"

	"github.com/verstamp/verstamp/buildinfo"
	"github.com/verstamp/verstamp/comm"
	"github.com/verstamp/verstamp/mansion"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("version", "Prints the current version of verstamp")
	ctx.Register(cmd, do)
}

type VersionData struct {
	Version       string `json:"version"`
	Commit        string `json:"commit"`
	VersionString string `json:"versionString"`
}

func do(ctx *mansion.Context) {
	if ctx.JSON {
		comm.Result(VersionData{
			Version:       buildinfo.Version,
			Commit:        buildinfo.Commit,
			VersionString: buildinfo.VersionString,
		})
	} else {
		log.Println(buildinfo.VersionString)
	}
}

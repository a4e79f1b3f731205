package build

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/verstamp/verstamp/comm"
	"github.com/verstamp/verstamp/manifest"
	"github.com/verstamp/verstamp/mansion"
	"github.com/verstamp/verstamp/winver"
)

var args = struct {
	manifest *string
	out      *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("build", "Assemble a VERSIONINFO description from a TOML manifest")
	args.manifest = cmd.Arg("manifest", "Path of the version manifest (TOML)").Required().ExistingFile()
	args.out = cmd.Flag("out", "File to write the version description to (defaults to stdout)").Short('o').String()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, *args.manifest, *args.out))
}

func Do(ctx *mansion.Context, manifestPath string, outPath string) error {
	params, undecoded, err := manifest.Load(manifestPath)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, key := range undecoded {
		comm.Warnf("%s: unknown key %q, ignoring", manifestPath, key)
	}

	info, err := winver.Build(*params)
	if err != nil {
		return errors.WithStack(err)
	}
	text := info.String()

	result := mansion.BuildResult{
		OutPath: outPath,
		Text:    text,
	}
	for _, block := range params.Strings {
		result.Tables = append(result.Tables, winver.TableName(block.Lang, block.Charset))
	}

	if outPath == "" {
		comm.ResultOrPrint(result, func() {
			// raw text on stdout so it can be piped into a file
			fmt.Print(text)
		})
		return nil
	}

	err = ioutil.WriteFile(outPath, []byte(text), 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	comm.ResultOrPrint(result, func() {
		comm.Statf("wrote version description to %s", outPath)
	})
	return nil
}

package filetime

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/verstamp/verstamp/comm"
	ft "github.com/verstamp/verstamp/filetime"
	"github.com/verstamp/verstamp/mansion"
)

var args = struct {
	value *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("filetime", "Convert between Windows FILETIME values and RFC 3339 timestamps").Hidden()
	args.value = cmd.Arg("value", "A FILETIME integer or an RFC 3339 timestamp").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	result, err := Do(*args.value)
	ctx.Must(err)

	comm.ResultOrPrint(result, func() {
		comm.Logf("filetime: %d", result.Filetime)
		comm.Logf("time:     %s", result.Time)
		comm.Logf("split:    (%d, %d)", result.High, result.Low)
	})
}

func Do(value string) (*mansion.FiletimeResult, error) {
	var filetime ft.Filetime

	if n, err := strconv.ParseUint(value, 10, 64); err == nil {
		filetime = ft.Filetime(n)
	} else {
		t, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return nil, errors.Errorf("%q is neither a FILETIME integer nor an RFC 3339 timestamp", value)
		}
		filetime = ft.FromTime(t)
	}

	high, low := filetime.Split()
	return &mansion.FiletimeResult{
		Filetime: uint64(filetime),
		Time:     filetime.Time().Format(time.RFC3339Nano),
		High:     high,
		Low:      low,
	}, nil
}

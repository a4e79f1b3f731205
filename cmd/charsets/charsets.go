package charsets

import (
	"fmt"

	"github.com/verstamp/verstamp/comm"
	"github.com/verstamp/verstamp/mansion"
	"github.com/verstamp/verstamp/winver"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("charsets", "List the charset identifiers known by name")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	if ctx.JSON {
		result := make(map[string]uint16)
		for _, id := range winver.KnownCharsetIDs() {
			result[id.String()] = uint16(id)
		}
		comm.Result(result)
		return
	}

	var rows [][]string
	for _, id := range winver.KnownCharsetIDs() {
		rows = append(rows, []string{fmt.Sprintf("0x%04X", uint16(id)), id.String()})
	}
	comm.Table([]string{"Code", "Charset"}, rows)
}

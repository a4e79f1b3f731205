// Package buildinfo carries version information stamped in by the
// build, via -ldflags "-X".
package buildinfo

import (
	"fmt"
	"strconv"
	"time"
)

var (
	Version       = "head" // set by command-line on CI release builds
	BuiltAt       = ""     // set by command-line on CI release builds
	Commit        = ""     // set by command-line on CI release builds
	VersionString = ""     // formatted on boot from 'Version' and 'BuiltAt'
)

func init() {
	VersionString = formatVersionString()
}

func formatVersionString() string {
	vs := fmt.Sprintf("%s, no build date", Version)
	if BuiltAt != "" {
		epoch, err := strconv.ParseInt(BuiltAt, 10, 64)
		if err == nil {
			vs = fmt.Sprintf("%s, built on %s", Version, time.Unix(epoch, 0).Format("Jan _2 2006 @ 15:04:05"))
		} else {
			vs = fmt.Sprintf("%s, invalid build date", Version)
		}
	}
	if Commit != "" {
		vs = fmt.Sprintf("%s, ref %s", vs, Commit)
	}
	return vs
}

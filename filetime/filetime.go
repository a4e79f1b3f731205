// Package filetime converts between Windows FILETIME values and time.Time.
//
// A FILETIME counts 100-nanosecond intervals since January 1, 1601 UTC.
// VERSIONINFO resources carry it split into two 32-bit halves, so this
// package also knows how to split and rejoin values.
package filetime

import "time"

// UnixEpoch is January 1, 1970 expressed in FILETIME ticks.
const UnixEpoch Filetime = 116444736000000000

// ticksPerSecond is the number of 100ns intervals in one second.
const ticksPerSecond = 10000000

// Filetime is a Windows FILETIME value.
type Filetime uint64

// FromTime converts t to a Filetime. The zone of t doesn't matter: two
// times denoting the same instant convert to the same Filetime.
// Sub-microsecond precision is discarded.
func FromTime(t time.Time) Filetime {
	t = t.UTC()
	ticks := uint64(t.Unix()) * ticksPerSecond
	micros := uint64(t.Nanosecond() / 1000)
	return UnixEpoch + Filetime(ticks+micros*10)
}

// Now returns the current time as a Filetime.
func Now() Filetime {
	return FromTime(time.Now())
}

// Time converts ft back to a time.Time, always in UTC regardless of the
// zone that produced ft. Precision is whole microseconds: the bottom
// decimal digit of the 100ns remainder is truncated, which is exactly
// the granularity FromTime can produce.
func (ft Filetime) Time() time.Time {
	ticks := int64(ft - UnixEpoch)
	secs := ticks / ticksPerSecond
	rem := ticks % ticksPerSecond
	if rem < 0 {
		// values between 1601 and 1970 divide negative
		secs--
		rem += ticksPerSecond
	}
	return time.Unix(secs, (rem/10)*1000).UTC()
}

// Split returns the high and low 32-bit halves of ft, the layout
// VERSIONINFO date fields use.
func (ft Filetime) Split() (high uint32, low uint32) {
	return uint32(ft >> 32), uint32(ft & 0xFFFFFFFF)
}

// Join reassembles a Filetime from its two 32-bit halves.
func Join(high uint32, low uint32) Filetime {
	return Filetime(high)<<32 | Filetime(low)
}

// SplitFromTime converts t and splits the result in one go.
func SplitFromTime(t time.Time) (high uint32, low uint32) {
	return FromTime(t).Split()
}

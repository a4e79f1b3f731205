package filetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_KnownValue(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	ft := FromTime(ts)
	assert.EqualValues(t, 132223104000000000, ft)

	high, low := ft.Split()
	assert.EqualValues(t, 30785590, high)
	assert.EqualValues(t, 1761935360, low)

	assert.Equal(t, ft, Join(high, low))
}

func Test_UnixEpoch(t *testing.T) {
	assert.Equal(t, UnixEpoch, FromTime(time.Unix(0, 0)))
	assert.Equal(t, time.Unix(0, 0).UTC(), UnixEpoch.Time())
}

func Test_ZoneIndependence(t *testing.T) {
	// same instant, three different offsets
	instant := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	kathmandu := instant.In(time.FixedZone("NPT", 5*3600+45*60))
	pacific := instant.In(time.FixedZone("PST", -8*3600))

	assert.Equal(t, FromTime(instant), FromTime(kathmandu))
	assert.Equal(t, FromTime(instant), FromTime(pacific))
}

func Test_RoundTrip(t *testing.T) {
	ts := time.Date(1998, 7, 16, 13, 37, 42, 123456000, time.FixedZone("CEST", 2*3600))
	back := FromTime(ts).Time()

	assert.Equal(t, ts.UTC(), back)
	assert.Equal(t, time.UTC, back.Location())
}

func Test_MicrosecondTruncation(t *testing.T) {
	// 7 extra 100ns ticks on top of 9876 full microseconds
	ft := UnixEpoch + 9876*10 + 7
	back := ft.Time()
	assert.EqualValues(t, 9876000, back.Nanosecond())

	// re-converting loses the odd ticks, by construction
	assert.Equal(t, ft-7, FromTime(back))
}

func Test_SplitRoundTrip(t *testing.T) {
	// values at microsecond granularity survive the time.Time round trip
	for _, ft := range []Filetime{0, UnixEpoch, 132223104000000000, UnixEpoch + 424242424240} {
		high, low := SplitFromTime(ft.Time())
		assert.Equal(t, ft, Join(high, low))
	}
}

func Test_PreUnixDates(t *testing.T) {
	// FILETIME reaches back to 1601, long before the Unix epoch
	ts := time.Date(1899, 12, 31, 23, 59, 59, 0, time.UTC)
	ft := FromTime(ts)
	assert.True(t, ft < UnixEpoch)
	assert.Equal(t, ts, ft.Time())
}

func Test_Now(t *testing.T) {
	before := FromTime(time.Now())
	now := Now()
	after := FromTime(time.Now())

	assert.True(t, before <= now)
	assert.True(t, now <= after)
}

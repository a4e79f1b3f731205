package manifest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verstamp/verstamp/winver"
)

const sampleManifest = `
filevers = [1, 2, 3, 0]
prodvers = [1, 2, 4, 0]
flags    = "0x2"
os       = "0x40004"
filetype = 1
date     = 2020-01-01T00:00:00Z

[[strings]]
lang    = "US English"
charset = "Unicode"
  [strings.fields]
  CompanyName = "ACME Corp."
  ProductName = "Anvil"
  [[strings.extra]]
  key   = "Mood"
  value = "optimistic"
  [[strings.extra]]
  key   = "Altitude"
  value = "dropping"
`

func Test_ParseSample(t *testing.T) {
	params, undecoded, err := Parse(sampleManifest)
	require.NoError(t, err)
	assert.Empty(t, undecoded)

	require.NotNil(t, params.FileVersion)
	assert.Equal(t, winver.VersionTuple{1, 2, 3, 0}, *params.FileVersion)
	require.NotNil(t, params.ProductVersion)
	assert.Equal(t, winver.VersionTuple{1, 2, 4, 0}, *params.ProductVersion)

	require.NotNil(t, params.Flags)
	assert.Equal(t, winver.VS_FF_PRERELEASE, *params.Flags)
	require.NotNil(t, params.OS)
	assert.Equal(t, winver.VOS_NT_WINDOWS32, *params.OS)
	require.NotNil(t, params.FileType)
	assert.Equal(t, winver.VFT_APP, *params.FileType)

	// unset keys stay nil so Build applies its own defaults
	assert.Nil(t, params.Mask)
	assert.Nil(t, params.Subtype)

	require.IsType(t, winver.TimeDate{}, params.Date)
	assert.Equal(t,
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Time(params.Date.(winver.TimeDate)).UTC())

	require.Len(t, params.Strings, 1)
	block := params.Strings[0]
	assert.Equal(t, winver.LangUSEnglish, block.Lang)
	assert.Equal(t, winver.CharsetUnicode, block.Charset)
	assert.Equal(t, "ACME Corp.", block.Fields.CompanyName)
	assert.Equal(t, "Anvil", block.Fields.ProductName)
	require.Len(t, block.Extra, 2)
	assert.Equal(t, winver.StringPair{Key: "Mood", Value: "optimistic"}, block.Extra[0])
	assert.Equal(t, winver.StringPair{Key: "Altitude", Value: "dropping"}, block.Extra[1])
}

func Test_ParseEmpty(t *testing.T) {
	params, undecoded, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, undecoded)

	assert.Nil(t, params.FileVersion)
	assert.Nil(t, params.ProductVersion)
	assert.Nil(t, params.Mask)
	assert.Nil(t, params.Flags)
	assert.Nil(t, params.OS)
	assert.Nil(t, params.FileType)
	assert.Nil(t, params.Subtype)
	assert.Nil(t, params.Date)
	assert.Nil(t, params.Strings)
}

func Test_ParseFiletimeDate(t *testing.T) {
	params, _, err := Parse("filetime = 132223104000000000\n")
	require.NoError(t, err)

	require.IsType(t, winver.SplitDate{}, params.Date)
	split := params.Date.(winver.SplitDate)
	assert.EqualValues(t, 30785590, split.High)
	assert.EqualValues(t, 1761935360, split.Low)
}

func Test_ParseRejectsBothDates(t *testing.T) {
	_, _, err := Parse("date = 2020-01-01T00:00:00Z\nfiletime = 1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pick one")
}

func Test_ParseNumericCodes(t *testing.T) {
	params, _, err := Parse(`
[[strings]]
lang    = 1033
charset = "0x04B0"
`)
	require.NoError(t, err)
	require.Len(t, params.Strings, 1)
	assert.Equal(t, winver.LangUSEnglish, params.Strings[0].Lang)
	assert.Equal(t, winver.CharsetUnicode, params.Strings[0].Charset)
}

func Test_ParseBadVersionTuple(t *testing.T) {
	_, _, err := Parse("filevers = [1, 2, 3]\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 4")
}

func Test_ParseUnknownNames(t *testing.T) {
	_, _, err := Parse("[[strings]]\nlang = \"klingon\"\ncharset = 0\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language")
}

func Test_ParseUndecodedKeys(t *testing.T) {
	_, undecoded, err := Parse("fileversion = [1, 2, 3, 4]\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"fileversion"}, undecoded)
}

package vsres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_VersionInfoText(t *testing.T) {
	ffi := NewFixedFileInfo(
		[4]int{1, 2, 3, 4},
		[4]int{1, 2, 3, 0},
		0x3F, 0x0, 0x40004, 0x1, 0x0,
		[2]uint32{30785590, 1761935360},
	)
	table := NewStringTable("040904B0", []StringStruct{
		NewStringStruct("CompanyName", "ACME Corp."),
		NewStringStruct("ProductName", "Anvil"),
	})
	translation := NewVarStruct("Translation", []int{1033, 1200})
	vi := NewVersionInfo(ffi, []Child{
		NewVarFileInfo([]*VarStruct{translation}),
		NewStringFileInfo([]*StringTable{table}),
	})

	expected := `# UTF-8
#
# For more details about fixed file info 'ffi' see:
# http://msdn.microsoft.com/en-us/library/ms646997.aspx
VSVersionInfo(
  ffi=FixedFileInfo(
    filevers=(1, 2, 3, 4),
    prodvers=(1, 2, 3, 0),
    mask=0x3f,
    flags=0x0,
    OS=0x40004,
    fileType=0x1,
    subtype=0x0,
    date=(30785590, 1761935360)
    ),
  kids=[
    VarFileInfo([VarStruct(u'Translation', [1033, 1200])]),
    StringFileInfo(
      [
      StringTable(
        u'040904B0',
        [StringStruct(u'CompanyName', u'ACME Corp.'),
        StringStruct(u'ProductName', u'Anvil')])
      ])
  ]
)
`
	assert.Equal(t, expected, vi.String())
}

func Test_VersionInfoTextNoKids(t *testing.T) {
	ffi := NewFixedFileInfo(
		[4]int{0, 0, 0, 0},
		[4]int{0, 0, 0, 0},
		0x3F, 0x0, 0x40004, 0x1, 0x0,
		[2]uint32{0, 0},
	)
	vi := NewVersionInfo(ffi, nil)

	text := vi.String()
	assert.Contains(t, text, "kids=[]\n")
	assert.Contains(t, text, "date=(0, 0)\n")
	assert.NotContains(t, text, "StringFileInfo")
	assert.NotContains(t, text, "VarFileInfo")
}

func Test_ConstructionIsDeterministic(t *testing.T) {
	build := func() string {
		return NewStringTable("000004B0", []StringStruct{
			NewStringStruct("a", "1"),
			NewStringStruct("b", "2"),
			NewStringStruct("c", "3"),
		}).String()
	}
	assert.Equal(t, build(), build())
}

func Test_OrderIsPreserved(t *testing.T) {
	st := NewStringTable("040904B0", []StringStruct{
		NewStringStruct("zebra", "1"),
		NewStringStruct("aardvark", "2"),
	})
	text := st.String()
	assert.True(t, strings.Index(text, "zebra") < strings.Index(text, "aardvark"))

	vs := NewVarStruct("Translation", []int{2057, 1200, 1033, 1200})
	assert.Equal(t, "VarStruct(u'Translation', [2057, 1200, 1033, 1200])", vs.String())
}

func Test_StringEscaping(t *testing.T) {
	ss := NewStringStruct("LegalCopyright", `it's "fine" \ok\`+"\n")
	assert.Equal(t, `StringStruct(u'LegalCopyright', u'it\'s "fine" \\ok\\\n')`, ss.String())
}

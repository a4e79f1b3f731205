package winver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_TableName(t *testing.T) {
	assert.Equal(t, "040904B0", TableName(LangUSEnglish, CharsetUnicode))
	assert.Equal(t, "000004E4", TableName(0, CharsetMultilingual))
	// raw codes outside the tables are fine
	assert.Equal(t, "FFFF0000", TableName(0xFFFF, CharsetASCII))
}

func Test_BuildStringTableEmpty(t *testing.T) {
	st := BuildStringTable(LangUSEnglish, CharsetUnicode, StringFields{})
	assert.Equal(t, "040904B0", st.Name)
	assert.Empty(t, st.Kids)
}

func Test_BuildStringTableFixedOrder(t *testing.T) {
	// filled in no particular order; output order is the declared one
	st := BuildStringTable(LangUSEnglish, CharsetUnicode, StringFields{
		SpecialBuild:    "nightly",
		CompanyName:     "ACME Corp.",
		ProductName:     "Anvil",
		Comments:        "drop on roadrunner",
		FileDescription: "Anvil dropper",
	})

	var keys []string
	for _, kid := range st.Kids {
		keys = append(keys, kid.Key)
	}
	assert.Equal(t, []string{
		"Comments",
		"CompanyName",
		"FileDescription",
		"ProductName",
		"SpecialBuild",
	}, keys)
}

func Test_BuildStringTableExtrasKeepCallOrder(t *testing.T) {
	st := BuildStringTable(LangUSEnglish, CharsetUnicode,
		StringFields{ProductName: "Anvil"},
		StringPair{Key: "Zebra", Value: "z"},
		StringPair{Key: "Aardvark", Value: "a"},
	)

	var keys []string
	for _, kid := range st.Kids {
		keys = append(keys, kid.Key)
	}
	// well-known fields first, then extras exactly as passed
	assert.Equal(t, []string{"ProductName", "Zebra", "Aardvark"}, keys)
}

func Test_BuildTranslation(t *testing.T) {
	vs := BuildTranslation(LangUSEnglish, CharsetUnicode)
	assert.Equal(t, "Translation", vs.Name)
	assert.Equal(t, []int{0x0409, 0x04B0}, vs.Kids)

	vs = BuildTranslation(LangUSEnglish, CharsetUnicode,
		TranslationPair{LangGerman, CharsetMultilingual},
		TranslationPair{LangJapanese, CharsetJapan},
	)
	assert.Equal(t, []int{0x0409, 0x04B0, 0x0407, 0x04E4, 0x0411, 0x03A4}, vs.Kids)
}

func Test_NameLookups(t *testing.T) {
	id, ok := LangByName("US English")
	assert.True(t, ok)
	assert.Equal(t, LangUSEnglish, id)

	id, ok = LangByName("us_english")
	assert.True(t, ok)
	assert.Equal(t, LangUSEnglish, id)

	_, ok = LangByName("klingon")
	assert.False(t, ok)

	cs, ok := CharsetByName("Unicode")
	assert.True(t, ok)
	assert.Equal(t, CharsetUnicode, cs)

	cs, ok = CharsetByName("latin2")
	assert.True(t, ok)
	assert.Equal(t, CharsetLatin2, cs)

	assert.Equal(t, "US English", LangUSEnglish.String())
	assert.Equal(t, "0x1234", LangID(0x1234).String())
	assert.Equal(t, "Unicode", CharsetUnicode.String())
	assert.Equal(t, "0x1234", CharsetID(0x1234).String())
}

func Test_KnownIDsAreSorted(t *testing.T) {
	langs := KnownLangIDs()
	assert.NotEmpty(t, langs)
	for i := 1; i < len(langs); i++ {
		assert.True(t, langs[i-1] < langs[i])
	}

	charsets := KnownCharsetIDs()
	assert.NotEmpty(t, charsets)
	for i := 1; i < len(charsets); i++ {
		assert.True(t, charsets[i-1] < charsets[i])
	}
}

package winver

import (
	"fmt"

	"github.com/verstamp/verstamp/vsres"
)

// StringPair is one key-value entry of a string table, used for keys
// beyond the well-known set.
type StringPair struct {
	Key   string
	Value string
}

// StringFields holds the well-known string-table entries of a
// VERSIONINFO resource. Empty fields are left out of the table, and
// the ones that are set always serialize in the declared order below,
// which consumers of the compiled resource rely on.
type StringFields struct {
	Comments         string
	CompanyName      string
	FileDescription  string
	FileVersion      string
	InternalName     string
	LegalCopyright   string
	LegalTrademarks  string
	OriginalFilename string
	PrivateBuild     string
	ProductName      string
	ProductVersion   string
	SpecialBuild     string
}

func (sf StringFields) pairs() []StringPair {
	ordered := []StringPair{
		{"Comments", sf.Comments},
		{"CompanyName", sf.CompanyName},
		{"FileDescription", sf.FileDescription},
		{"FileVersion", sf.FileVersion},
		{"InternalName", sf.InternalName},
		{"LegalCopyright", sf.LegalCopyright},
		{"LegalTrademarks", sf.LegalTrademarks},
		{"OriginalFilename", sf.OriginalFilename},
		{"PrivateBuild", sf.PrivateBuild},
		{"ProductName", sf.ProductName},
		{"ProductVersion", sf.ProductVersion},
		{"SpecialBuild", sf.SpecialBuild},
	}

	var set []StringPair
	for _, pair := range ordered {
		if pair.Value != "" {
			set = append(set, pair)
		}
	}
	return set
}

// TableName returns the 8-hex-digit StringFileInfo block name for a
// (language, charset) pair: both codes zero-padded and uppercased,
// language first.
func TableName(lang LangID, charset CharsetID) string {
	return fmt.Sprintf("%04X%04X", uint16(lang), uint16(charset))
}

// BuildStringTable builds the string table for one (language, charset)
// pair. Well-known fields come out in their fixed order regardless of
// how the caller filled the struct; extra pairs follow in argument
// order. An all-empty input yields a table with zero entries, which is
// fine.
func BuildStringTable(lang LangID, charset CharsetID, fields StringFields, extra ...StringPair) *vsres.StringTable {
	var kids []vsres.StringStruct
	for _, pair := range fields.pairs() {
		kids = append(kids, vsres.NewStringStruct(pair.Key, pair.Value))
	}
	for _, pair := range extra {
		kids = append(kids, vsres.NewStringStruct(pair.Key, pair.Value))
	}
	return vsres.NewStringTable(TableName(lang, charset), kids)
}

// TranslationPair is one (language, charset) combination declared by a
// Translation record.
type TranslationPair struct {
	Lang    LangID
	Charset CharsetID
}

// BuildTranslation builds the VarFileInfo "Translation" record
// declaring which (language, code page) combinations the resource
// supports. Pairs flatten into one integer list, language first within
// each pair.
func BuildTranslation(lang LangID, charset CharsetID, extra ...TranslationPair) *vsres.VarStruct {
	kids := []int{int(lang), int(charset)}
	for _, pair := range extra {
		kids = append(kids, int(pair.Lang), int(pair.Charset))
	}
	return vsres.NewVarStruct("Translation", kids)
}

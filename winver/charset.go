package winver

import (
	"fmt"
	"sort"
)

// CharsetID is a 16-bit character-set (code page) identifier, the
// second half of a StringFileInfo block name.
//
// Like LangID, this is an open set: unknown code pages can be passed
// as raw integers.
type CharsetID uint16

const (
	CharsetASCII        CharsetID = 0x0000
	CharsetJapan        CharsetID = 0x03A4
	CharsetKorea        CharsetID = 0x03B5
	CharsetTaiwan       CharsetID = 0x03B6
	CharsetUnicode      CharsetID = 0x04B0
	CharsetLatin2       CharsetID = 0x04E2
	CharsetCyrillic     CharsetID = 0x04E3
	CharsetMultilingual CharsetID = 0x04E4
	CharsetGreek        CharsetID = 0x04E5
	CharsetTurkish      CharsetID = 0x04E6
	CharsetHebrew       CharsetID = 0x04E7
	CharsetArabic       CharsetID = 0x04E8
)

var charsetNames = map[CharsetID]string{
	CharsetASCII:        "7-bit ASCII",
	CharsetJapan:        "Japan (Shift-JIS X-0208)",
	CharsetKorea:        "Korea (Shift-KSC 5601)",
	CharsetTaiwan:       "Taiwan (Big5)",
	CharsetUnicode:      "Unicode",
	CharsetLatin2:       "Latin-2 (Eastern European)",
	CharsetCyrillic:     "Cyrillic",
	CharsetMultilingual: "Multilingual",
	CharsetGreek:        "Greek",
	CharsetTurkish:      "Turkish",
	CharsetHebrew:       "Hebrew",
	CharsetArabic:       "Arabic",
}

// String returns the documented name for known codes, and the hex form
// for everything else.
func (c CharsetID) String() string {
	if name, ok := charsetNames[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint16(c))
}

// KnownCharsetIDs lists the charset codes this package has names for,
// in ascending code order.
func KnownCharsetIDs() []CharsetID {
	ids := make([]CharsetID, 0, len(charsetNames))
	for id := range charsetNames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CharsetByName looks a charset code up by its documented name, with
// the same forgiving matching as LangByName. Short aliases like
// "latin2" or "ascii" work too.
func CharsetByName(name string) (CharsetID, bool) {
	needle := foldName(name)
	for id, known := range charsetNames {
		if foldName(known) == needle {
			return id, true
		}
	}
	// aliases for the unwieldy full names
	switch needle {
	case "ascii":
		return CharsetASCII, true
	case "japan", "shiftjis":
		return CharsetJapan, true
	case "korea":
		return CharsetKorea, true
	case "taiwan", "big5":
		return CharsetTaiwan, true
	case "latin2":
		return CharsetLatin2, true
	}
	return 0, false
}

package winver

import (
	"fmt"
	"sort"
	"strings"
)

// LangID is a 16-bit Windows language identifier, as used in
// StringFileInfo block names and Translation records.
//
// The constants below cover the languages named in the VERSIONINFO
// documentation. This is an open set: any other MS-LCID code can be
// passed as a raw integer wherever a LangID is accepted.
type LangID uint16

const (
	LangArabic                LangID = 0x0401
	LangBulgarian             LangID = 0x0402
	LangCatalan               LangID = 0x0403
	LangTraditionalChinese    LangID = 0x0404
	LangCzech                 LangID = 0x0405
	LangDanish                LangID = 0x0406
	LangGerman                LangID = 0x0407
	LangGreek                 LangID = 0x0408
	LangUSEnglish             LangID = 0x0409
	LangCastilianSpanish      LangID = 0x040A
	LangFinnish               LangID = 0x040B
	LangFrench                LangID = 0x040C
	LangHebrew                LangID = 0x040D
	LangHungarian             LangID = 0x040E
	LangIcelandic             LangID = 0x040F
	LangItalian               LangID = 0x0410
	LangJapanese              LangID = 0x0411
	LangKorean                LangID = 0x0412
	LangDutch                 LangID = 0x0413
	LangNorwegianBokmal       LangID = 0x0414
	LangPolish                LangID = 0x0415
	LangPortugueseBrazil      LangID = 0x0416
	LangRhaetoRomanic         LangID = 0x0417
	LangRomanian              LangID = 0x0418
	LangRussian               LangID = 0x0419
	LangCroatoSerbianLatin    LangID = 0x041A
	LangSlovak                LangID = 0x041B
	LangAlbanian              LangID = 0x041C
	LangSwedish               LangID = 0x041D
	LangThai                  LangID = 0x041E
	LangTurkish               LangID = 0x041F
	LangUrdu                  LangID = 0x0420
	LangBahasa                LangID = 0x0421
	LangSimplifiedChinese     LangID = 0x0804
	LangSwissGerman           LangID = 0x0807
	LangUKEnglish             LangID = 0x0809
	LangSpanishMexico         LangID = 0x080A
	LangBelgianFrench         LangID = 0x080C
	LangSwissItalian          LangID = 0x0810
	LangBelgianDutch          LangID = 0x0813
	LangNorwegianNynorsk      LangID = 0x0814
	LangPortuguesePortugal    LangID = 0x0816
	LangSerboCroatianCyrillic LangID = 0x081A
	LangCanadianFrench        LangID = 0x0C0C
	LangSwissFrench           LangID = 0x100C
)

var langNames = map[LangID]string{
	LangArabic:                "Arabic",
	LangBulgarian:             "Bulgarian",
	LangCatalan:               "Catalan",
	LangTraditionalChinese:    "Traditional Chinese",
	LangCzech:                 "Czech",
	LangDanish:                "Danish",
	LangGerman:                "German",
	LangGreek:                 "Greek",
	LangUSEnglish:             "US English",
	LangCastilianSpanish:      "Castilian Spanish",
	LangFinnish:               "Finnish",
	LangFrench:                "French",
	LangHebrew:                "Hebrew",
	LangHungarian:             "Hungarian",
	LangIcelandic:             "Icelandic",
	LangItalian:               "Italian",
	LangJapanese:              "Japanese",
	LangKorean:                "Korean",
	LangDutch:                 "Dutch",
	LangNorwegianBokmal:       "Norwegian Bokmal",
	LangPolish:                "Polish",
	LangPortugueseBrazil:      "Portuguese (Brazil)",
	LangRhaetoRomanic:         "Rhaeto-Romanic",
	LangRomanian:              "Romanian",
	LangRussian:               "Russian",
	LangCroatoSerbianLatin:    "Croato-Serbian (Latin)",
	LangSlovak:                "Slovak",
	LangAlbanian:              "Albanian",
	LangSwedish:               "Swedish",
	LangThai:                  "Thai",
	LangTurkish:               "Turkish",
	LangUrdu:                  "Urdu",
	LangBahasa:                "Bahasa",
	LangSimplifiedChinese:     "Simplified Chinese",
	LangSwissGerman:           "Swiss German",
	LangUKEnglish:             "UK English",
	LangSpanishMexico:         "Spanish (Mexico)",
	LangBelgianFrench:         "Belgian French",
	LangSwissItalian:          "Swiss Italian",
	LangBelgianDutch:          "Belgian Dutch",
	LangNorwegianNynorsk:      "Norwegian Nynorsk",
	LangPortuguesePortugal:    "Portuguese (Portugal)",
	LangSerboCroatianCyrillic: "Serbo-Croatian (Cyrillic)",
	LangCanadianFrench:        "Canadian French",
	LangSwissFrench:           "Swiss French",
}

// String returns the documented name for known codes, and the hex form
// for everything else.
func (l LangID) String() string {
	if name, ok := langNames[l]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint16(l))
}

// KnownLangIDs lists the language codes this package has names for,
// in ascending code order.
func KnownLangIDs() []LangID {
	ids := make([]LangID, 0, len(langNames))
	for id := range langNames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LangByName looks a language code up by its documented name.
// Lookup is forgiving: case, spaces, and punctuation don't matter, so
// "US English", "us_english" and "USEnglish" all match.
func LangByName(name string) (LangID, bool) {
	needle := foldName(name)
	for id, known := range langNames {
		if foldName(known) == needle {
			return id, true
		}
	}
	return 0, false
}

func foldName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '_', '-', '(', ')':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Package manifest reads version manifests: TOML files describing the
// inputs to winver.Build. Every key is optional; missing keys fall
// through to the assembler's documented defaults.
//
//     filevers = [1, 2, 3, 0]
//     flags    = "0x2"                  # integers or "0x"-strings
//     date     = 2020-01-01T00:00:00Z   # or: filetime = 132223104000000000
//
//     [[strings]]
//     lang    = "US English"            # name, integer, or "0x0409"
//     charset = "Unicode"
//       [strings.fields]
//       CompanyName = "ACME Corp."
//       ProductName = "Anvil"
//       [[strings.extra]]               # appended after the fields, in order
//       key   = "Mood"
//       value = "optimistic"
package manifest

import (
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/verstamp/verstamp/filetime"
	"github.com/verstamp/verstamp/winver"
)

type manifest struct {
	FileVers verTuple  `toml:"filevers"`
	ProdVers verTuple  `toml:"prodvers"`
	Mask     hexInt    `toml:"mask"`
	Flags    hexInt    `toml:"flags"`
	OS       hexInt    `toml:"os"`
	FileType hexInt    `toml:"filetype"`
	Subtype  hexInt    `toml:"subtype"`
	Date     time.Time `toml:"date"`
	Filetime int64     `toml:"filetime"`
	Strings  []block   `toml:"strings"`
}

type block struct {
	Lang    langValue           `toml:"lang"`
	Charset charsetValue        `toml:"charset"`
	Fields  winver.StringFields `toml:"fields"`
	Extra   []extraPair         `toml:"extra"`
}

type extraPair struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// verTuple is a [4]int version tuple; "set" distinguishes an absent
// key from an explicit (0, 0, 0, 0).
type verTuple struct {
	value winver.VersionTuple
	set   bool
}

var _ toml.Unmarshaler = (*verTuple)(nil)

func (vt *verTuple) UnmarshalTOML(data interface{}) error {
	parts, ok := data.([]interface{})
	if !ok {
		return errors.Errorf("version tuple: expected an array, got %v", data)
	}
	if len(parts) != 4 {
		return errors.Errorf("version tuple: expected exactly 4 components, got %d", len(parts))
	}
	for i, part := range parts {
		n, ok := part.(int64)
		if !ok {
			return errors.Errorf("version tuple: component %d: expected an integer, got %v", i, part)
		}
		vt.value[i] = int(n)
	}
	vt.set = true
	return nil
}

// hexInt accepts an integer or a string like "0x3f" (TOML has no hex
// integer literals).
type hexInt struct {
	value uint32
	set   bool
}

var _ toml.Unmarshaler = (*hexInt)(nil)

func (h *hexInt) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case int64:
		h.value = uint32(v)
	case string:
		parsed, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", v)
		}
		h.value = uint32(parsed)
	default:
		return errors.Errorf("expected an integer or a hex string, got %v", data)
	}
	h.set = true
	return nil
}

// langValue accepts a language code as integer, hex string, or one of
// the names winver knows.
type langValue struct {
	id winver.LangID
}

var _ toml.Unmarshaler = (*langValue)(nil)

func (l *langValue) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case int64:
		l.id = winver.LangID(v)
	case string:
		if parsed, err := strconv.ParseUint(v, 0, 16); err == nil {
			l.id = winver.LangID(parsed)
			return nil
		}
		id, ok := winver.LangByName(v)
		if !ok {
			return errors.Errorf("unknown language %q (pass a raw code for languages not in the table)", v)
		}
		l.id = id
	default:
		return errors.Errorf("lang: expected an integer or a name, got %v", data)
	}
	return nil
}

// charsetValue accepts a charset code as integer, hex string, or one
// of the names winver knows.
type charsetValue struct {
	id winver.CharsetID
}

var _ toml.Unmarshaler = (*charsetValue)(nil)

func (c *charsetValue) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case int64:
		c.id = winver.CharsetID(v)
	case string:
		if parsed, err := strconv.ParseUint(v, 0, 16); err == nil {
			c.id = winver.CharsetID(parsed)
			return nil
		}
		id, ok := winver.CharsetByName(v)
		if !ok {
			return errors.Errorf("unknown charset %q (pass a raw code for charsets not in the table)", v)
		}
		c.id = id
	default:
		return errors.Errorf("charset: expected an integer or a name, got %v", data)
	}
	return nil
}

func (m *manifest) params() (*winver.Params, error) {
	params := &winver.Params{}

	if m.FileVers.set {
		v := m.FileVers.value
		params.FileVersion = &v
	}
	if m.ProdVers.set {
		v := m.ProdVers.value
		params.ProductVersion = &v
	}
	if m.Mask.set {
		v := winver.FileFlags(m.Mask.value)
		params.Mask = &v
	}
	if m.Flags.set {
		v := winver.FileFlags(m.Flags.value)
		params.Flags = &v
	}
	if m.OS.set {
		v := winver.FileOS(m.OS.value)
		params.OS = &v
	}
	if m.FileType.set {
		v := winver.FileType(m.FileType.value)
		params.FileType = &v
	}
	if m.Subtype.set {
		v := winver.FileSubtype(m.Subtype.value)
		params.Subtype = &v
	}

	hasDate := !m.Date.IsZero()
	hasFiletime := m.Filetime != 0
	if hasDate && hasFiletime {
		return nil, errors.New("manifest sets both 'date' and 'filetime': pick one")
	}
	if hasDate {
		params.Date = winver.TimeDate(m.Date)
	} else if hasFiletime {
		high, low := filetime.Filetime(m.Filetime).Split()
		params.Date = winver.SplitDate{High: high, Low: low}
	}

	if m.Strings != nil {
		blocks := make([]winver.StringBlock, 0, len(m.Strings))
		for _, b := range m.Strings {
			var extra []winver.StringPair
			for _, pair := range b.Extra {
				extra = append(extra, winver.StringPair{Key: pair.Key, Value: pair.Value})
			}
			blocks = append(blocks, winver.StringBlock{
				Lang:    b.Lang.id,
				Charset: b.Charset.id,
				Fields:  b.Fields,
				Extra:   extra,
			})
		}
		params.Strings = blocks
	}

	return params, nil
}

// Parse decodes manifest text. It returns the assembler params and the
// list of keys that didn't decode into anything (useful for typo
// warnings).
func Parse(data string) (*winver.Params, []string, error) {
	var m manifest
	md, err := toml.Decode(data, &m)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}

	params, err := m.params()
	if err != nil {
		return nil, nil, err
	}
	return params, undecoded, nil
}

// Load reads and decodes a manifest file, see Parse.
func Load(path string) (*winver.Params, []string, error) {
	var m manifest
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}

	params, err := m.params()
	if err != nil {
		return nil, nil, err
	}
	return params, undecoded, nil
}

// Package winver assembles Windows VERSIONINFO resource descriptions:
// it resolves defaults, validates version numbers, converts timestamps
// and produces the nested vsres record tree the packaging tool compiles
// into an executable.
package winver

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/verstamp/verstamp/filetime"
	"github.com/verstamp/verstamp/vsres"
)

// VersionTuple is a four-part (major, minor, build, private) version
// number. Each part must fit in 16 bits. For SemVer, use
// (MAJOR, MINOR, PATCH, 0).
type VersionTuple [4]int

// InvalidVersionTupleError reports a version component outside
// [0, 65536).
type InvalidVersionTupleError struct {
	Field string
	Index int
	Value int
}

func (e *InvalidVersionTupleError) Error() string {
	return fmt.Sprintf("%s[%d]: version component %d is out of range [0, 65536)", e.Field, e.Index, e.Value)
}

func (vt VersionTuple) validate(field string) error {
	for i, v := range vt {
		if v < 0 || v >= 1<<16 {
			return errors.WithStack(&InvalidVersionTupleError{
				Field: field,
				Index: i,
				Value: v,
			})
		}
	}
	return nil
}

// Date is the creation timestamp of a version resource: either a
// calendar time (TimeDate) or an already-split FILETIME (SplitDate).
type Date interface {
	split() (high uint32, low uint32)
}

// TimeDate supplies the date as a calendar time, converted through the
// filetime package.
type TimeDate time.Time

func (d TimeDate) split() (high uint32, low uint32) {
	return filetime.SplitFromTime(time.Time(d))
}

// SplitDate supplies the date as a pre-split FILETIME, used verbatim.
type SplitDate struct {
	High uint32
	Low  uint32
}

func (d SplitDate) split() (high uint32, low uint32) {
	return d.High, d.Low
}

// StringBlock describes one localized string table: its (language,
// charset) pair, the well-known fields, and any extra entries to
// append after them.
type StringBlock struct {
	Lang    LangID
	Charset CharsetID
	Fields  StringFields
	Extra   []StringPair
}

// Params are the inputs to Build. Every field is optional; nil means
// "use the documented default".
type Params struct {
	// FileVersion defaults to (0, 0, 0, 0)
	FileVersion *VersionTuple
	// ProductVersion defaults to the resolved FileVersion
	ProductVersion *VersionTuple
	// Mask defaults to VS_FFI_FILEFLAGSMASK
	Mask *FileFlags
	// Flags defaults to no flags
	Flags *FileFlags
	// OS defaults to VOS_NT_WINDOWS32
	OS *FileOS
	// FileType defaults to VFT_APP
	FileType *FileType
	// Subtype defaults to VFT2_UNKNOWN
	Subtype *FileSubtype
	// Date defaults to the current time
	Date Date
	// Strings lists the localized string blocks, one per
	// (language, charset) pair. nil means no child blocks at all.
	Strings []StringBlock
}

// Build assembles the complete version resource tree. It is pure:
// the only environmental read is the wall clock when Date is nil.
//
// Version tuples are range-checked before any record is constructed.
// All other fields pass through unvalidated, so codes absent from the
// tables in this package keep working.
func Build(params Params) (*vsres.VersionInfo, error) {
	filevers := VersionTuple{0, 0, 0, 0}
	if params.FileVersion != nil {
		filevers = *params.FileVersion
	}
	if err := filevers.validate("filevers"); err != nil {
		return nil, err
	}

	prodvers := filevers
	if params.ProductVersion != nil {
		prodvers = *params.ProductVersion
	}
	if err := prodvers.validate("prodvers"); err != nil {
		return nil, err
	}

	mask := VS_FFI_FILEFLAGSMASK
	if params.Mask != nil {
		mask = *params.Mask
	}

	var flags FileFlags
	if params.Flags != nil {
		flags = *params.Flags
	}

	fileOS := VOS_NT_WINDOWS32
	if params.OS != nil {
		fileOS = *params.OS
	}

	fileType := VFT_APP
	if params.FileType != nil {
		fileType = *params.FileType
	}

	subtype := VFT2_UNKNOWN
	if params.Subtype != nil {
		subtype = *params.Subtype
	}

	date := params.Date
	if date == nil {
		high, low := filetime.Now().Split()
		date = SplitDate{High: high, Low: low}
	}
	high, low := date.split()

	ffi := vsres.NewFixedFileInfo(
		[4]int(filevers),
		[4]int(prodvers),
		uint32(mask),
		uint32(flags),
		uint32(fileOS),
		uint32(fileType),
		uint32(subtype),
		[2]uint32{high, low},
	)

	var kids []vsres.Child
	if params.Strings != nil {
		var tables []*vsres.StringTable
		var translations []*vsres.VarStruct
		for _, block := range params.Strings {
			tables = append(tables, BuildStringTable(block.Lang, block.Charset, block.Fields, block.Extra...))
			// each block declares only its own pair
			translations = append(translations, BuildTranslation(block.Lang, block.Charset))
		}
		kids = []vsres.Child{
			vsres.NewVarFileInfo(translations),
			vsres.NewStringFileInfo(tables),
		}
	}

	return vsres.NewVersionInfo(ffi, kids), nil
}

// Package vsres holds the record types that make up a VERSIONINFO
// resource description: the fixed-info header, string tables and
// translation records, and the top-level tree that groups them.
//
// The text form (String on VersionInfo) is the version-file format the
// downstream packaging tool evaluates and compiles into the executable.
// It is deterministic: records serialize their contents in exactly the
// order they were constructed with.
package vsres

import (
	"fmt"
	"strings"
)

// FixedFileInfo is the fixed-shape header of a version resource:
// version numbers, flag bits, OS/type tags and a split FILETIME date.
type FixedFileInfo struct {
	FileVersion    [4]int
	ProductVersion [4]int
	Mask           uint32
	Flags          uint32
	OS             uint32
	FileType       uint32
	Subtype        uint32
	Date           [2]uint32
}

// NewFixedFileInfo builds a FixedFileInfo from its eight fields.
func NewFixedFileInfo(filevers [4]int, prodvers [4]int, mask uint32, flags uint32, os uint32, fileType uint32, subtype uint32, date [2]uint32) *FixedFileInfo {
	return &FixedFileInfo{
		FileVersion:    filevers,
		ProductVersion: prodvers,
		Mask:           mask,
		Flags:          flags,
		OS:             os,
		FileType:       fileType,
		Subtype:        subtype,
		Date:           date,
	}
}

// StringStruct is a single key-value entry of a string table.
type StringStruct struct {
	Key   string
	Value string
}

// NewStringStruct builds a single string-table entry.
func NewStringStruct(key string, value string) StringStruct {
	return StringStruct{Key: key, Value: value}
}

func (ss StringStruct) String() string {
	return fmt.Sprintf("StringStruct(%s, %s)", pyStr(ss.Key), pyStr(ss.Value))
}

// StringTable is a named, ordered list of string entries for one
// (language, charset) pair. The name is the 8-hex-digit concatenation
// of both codes.
type StringTable struct {
	Name string
	Kids []StringStruct
}

// NewStringTable builds a string table. The entry order is preserved
// as given.
func NewStringTable(name string, kids []StringStruct) *StringTable {
	return &StringTable{Name: name, Kids: kids}
}

func (st *StringTable) String() string {
	var b strings.Builder
	st.writeTo(&b, "  ")
	return b.String()
}

func (st *StringTable) writeTo(b *strings.Builder, indent string) {
	fmt.Fprintf(b, "%sStringTable(\n", indent)
	fmt.Fprintf(b, "%s  %s,\n", indent, pyStr(st.Name))
	fmt.Fprintf(b, "%s  [", indent)
	for i, kid := range st.Kids {
		if i > 0 {
			fmt.Fprintf(b, ",\n%s  ", indent)
		}
		b.WriteString(kid.String())
	}
	b.WriteString("])")
}

// StringFileInfo is the top-level container for string tables.
type StringFileInfo struct {
	Kids []*StringTable
}

// NewStringFileInfo wraps string tables into their container block.
func NewStringFileInfo(kids []*StringTable) *StringFileInfo {
	return &StringFileInfo{Kids: kids}
}

func (sfi *StringFileInfo) String() string {
	var b strings.Builder
	sfi.writeTo(&b, "")
	return b.String()
}

func (sfi *StringFileInfo) writeTo(b *strings.Builder, indent string) {
	fmt.Fprintf(b, "%sStringFileInfo(\n", indent)
	fmt.Fprintf(b, "%s  [\n", indent)
	for i, kid := range sfi.Kids {
		if i > 0 {
			b.WriteString(",\n")
		}
		kid.writeTo(b, indent+"  ")
	}
	fmt.Fprintf(b, "\n%s  ])", indent)
}

// VarStruct is a named, ordered integer list. The only name in use is
// "Translation", whose value flattens (language, charset) pairs.
type VarStruct struct {
	Name string
	Kids []int
}

// NewVarStruct builds a variable record. The value order is preserved
// as given.
func NewVarStruct(name string, kids []int) *VarStruct {
	return &VarStruct{Name: name, Kids: kids}
}

func (vs *VarStruct) String() string {
	values := make([]string, len(vs.Kids))
	for i, kid := range vs.Kids {
		values[i] = fmt.Sprintf("%d", kid)
	}
	return fmt.Sprintf("VarStruct(%s, [%s])", pyStr(vs.Name), strings.Join(values, ", "))
}

// VarFileInfo is the top-level container for variable records.
type VarFileInfo struct {
	Kids []*VarStruct
}

// NewVarFileInfo wraps variable records into their container block.
func NewVarFileInfo(kids []*VarStruct) *VarFileInfo {
	return &VarFileInfo{Kids: kids}
}

func (vfi *VarFileInfo) String() string {
	var b strings.Builder
	vfi.writeTo(&b, "")
	return b.String()
}

func (vfi *VarFileInfo) writeTo(b *strings.Builder, indent string) {
	fmt.Fprintf(b, "%sVarFileInfo([", indent)
	for i, kid := range vfi.Kids {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(kid.String())
	}
	b.WriteString("])")
}

// Child is a top-level block of a version resource: either a
// VarFileInfo or a StringFileInfo.
type Child interface {
	writeTo(b *strings.Builder, indent string)
}

var _ Child = (*VarFileInfo)(nil)
var _ Child = (*StringFileInfo)(nil)

// VersionInfo is the complete version resource tree.
type VersionInfo struct {
	FFI  *FixedFileInfo
	Kids []Child
}

// NewVersionInfo wraps a fixed-info header and its child blocks into
// the top-level tree.
func NewVersionInfo(ffi *FixedFileInfo, kids []Child) *VersionInfo {
	return &VersionInfo{FFI: ffi, Kids: kids}
}

// String renders the tree as version-file text, ready to be written to
// disk and handed to the packaging tool.
func (vi *VersionInfo) String() string {
	var b strings.Builder
	b.WriteString("# UTF-8\n")
	b.WriteString("#\n")
	b.WriteString("# For more details about fixed file info 'ffi' see:\n")
	b.WriteString("# http://msdn.microsoft.com/en-us/library/ms646997.aspx\n")
	b.WriteString("VSVersionInfo(\n")
	b.WriteString("  ffi=FixedFileInfo(\n")
	fmt.Fprintf(&b, "    filevers=%s,\n", pyTuple4(vi.FFI.FileVersion))
	fmt.Fprintf(&b, "    prodvers=%s,\n", pyTuple4(vi.FFI.ProductVersion))
	fmt.Fprintf(&b, "    mask=%#x,\n", vi.FFI.Mask)
	fmt.Fprintf(&b, "    flags=%#x,\n", vi.FFI.Flags)
	fmt.Fprintf(&b, "    OS=%#x,\n", vi.FFI.OS)
	fmt.Fprintf(&b, "    fileType=%#x,\n", vi.FFI.FileType)
	fmt.Fprintf(&b, "    subtype=%#x,\n", vi.FFI.Subtype)
	fmt.Fprintf(&b, "    date=(%d, %d)\n", vi.FFI.Date[0], vi.FFI.Date[1])
	b.WriteString("    ),\n")
	b.WriteString("  kids=[")
	for i, kid := range vi.Kids {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n")
		kid.writeTo(&b, "    ")
	}
	if len(vi.Kids) > 0 {
		b.WriteString("\n  ")
	}
	b.WriteString("]\n")
	b.WriteString(")\n")
	return b.String()
}

func pyTuple4(t [4]int) string {
	return fmt.Sprintf("(%d, %d, %d, %d)", t[0], t[1], t[2], t[3])
}

// pyStr renders s as a u'...' literal the packaging tool can evaluate.
func pyStr(s string) string {
	var b strings.Builder
	b.WriteString("u'")
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString("'")
	return b.String()
}

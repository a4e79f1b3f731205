package winver

// The fixed-info tag fields of a VERSIONINFO resource, as defined in
// verrsrc.h. All four are open code spaces: values outside the listed
// constants are legal and pass through untouched.
//
// https://docs.microsoft.com/en-us/windows/win32/api/verrsrc/ns-verrsrc-vs_fixedfileinfo

// FileFlags is the dwFileFlags bitmask describing Boolean attributes
// of the file.
type FileFlags uint32

const (
	// VS_FF_DEBUG marks a file built with debugging features enabled.
	VS_FF_DEBUG FileFlags = 0x00000001
	// VS_FF_PRERELEASE marks a development version.
	VS_FF_PRERELEASE FileFlags = 0x00000002
	// VS_FF_PATCHED marks a file modified from the shipping version of
	// the same version number.
	VS_FF_PATCHED FileFlags = 0x00000004
	// VS_FF_PRIVATEBUILD marks a file not built with standard release
	// procedures; pair it with a PrivateBuild string entry.
	VS_FF_PRIVATEBUILD FileFlags = 0x00000008
	// VS_FF_INFOINFERRED marks a dynamically created version structure.
	// Never set it in actual resource data.
	VS_FF_INFOINFERRED FileFlags = 0x00000010
	// VS_FF_SPECIALBUILD marks a variation of the normal file of the
	// same version number; pair it with a SpecialBuild string entry.
	VS_FF_SPECIALBUILD FileFlags = 0x00000020

	// VS_FFI_FILEFLAGSMASK combines all valid flag bits.
	VS_FFI_FILEFLAGSMASK FileFlags = 0x0000003F
)

// FileOS is the dwFileOS tag naming the OS the file was designed for.
// Target and host halves can be combined, e.g. VOS_DOS | VOS__WINDOWS16.
type FileOS uint32

const (
	VOS_UNKNOWN FileOS = 0x00000000
	VOS_DOS     FileOS = 0x00010000
	VOS_OS216   FileOS = 0x00020000
	VOS_OS232   FileOS = 0x00030000
	VOS_NT      FileOS = 0x00040000
	VOS_WINCE   FileOS = 0x00050000

	VOS__BASE      FileOS = 0x00000000
	VOS__WINDOWS16 FileOS = 0x00000001
	VOS__PM16      FileOS = 0x00000002
	VOS__PM32      FileOS = 0x00000003
	VOS__WINDOWS32 FileOS = 0x00000004

	VOS_DOS_WINDOWS16 FileOS = 0x00010001
	VOS_DOS_WINDOWS32 FileOS = 0x00010004
	VOS_OS216_PM16    FileOS = 0x00020002
	VOS_OS232_PM32    FileOS = 0x00030003
	// VOS_NT_WINDOWS32 is modern 32-bit Windows, the default target.
	VOS_NT_WINDOWS32 FileOS = 0x00040004
)

// FileType is the dwFileType tag naming the general type of file.
type FileType uint32

const (
	VFT_UNKNOWN FileType = 0x00000000
	VFT_APP     FileType = 0x00000001
	VFT_DLL     FileType = 0x00000002
	// VFT_DRV files carry a VFT2_DRV_* subtype.
	VFT_DRV FileType = 0x00000003
	// VFT_FONT files carry a VFT2_FONT_* subtype.
	VFT_FONT       FileType = 0x00000004
	VFT_VXD        FileType = 0x00000005
	VFT_STATIC_LIB FileType = 0x00000007
)

// FileSubtype is the dwFileSubtype tag; its meaning depends on the
// FileType (driver kinds for VFT_DRV, font kinds for VFT_FONT, zero for
// everything else). No cross-checking against FileType is performed.
type FileSubtype uint32

const (
	VFT2_UNKNOWN FileSubtype = 0x00000000

	VFT2_DRV_PRINTER           FileSubtype = 0x00000001
	VFT2_DRV_KEYBOARD          FileSubtype = 0x00000002
	VFT2_DRV_LANGUAGE          FileSubtype = 0x00000003
	VFT2_DRV_DISPLAY           FileSubtype = 0x00000004
	VFT2_DRV_MOUSE             FileSubtype = 0x00000005
	VFT2_DRV_NETWORK           FileSubtype = 0x00000006
	VFT2_DRV_SYSTEM            FileSubtype = 0x00000007
	VFT2_DRV_INSTALLABLE       FileSubtype = 0x00000008
	VFT2_DRV_SOUND             FileSubtype = 0x00000009
	VFT2_DRV_COMM              FileSubtype = 0x0000000A
	VFT2_DRV_INPUTMETHOD       FileSubtype = 0x0000000B
	VFT2_DRV_VERSIONED_PRINTER FileSubtype = 0x0000000C

	VFT2_FONT_RASTER   FileSubtype = 0x00000001
	VFT2_FONT_VECTOR   FileSubtype = 0x00000002
	VFT2_FONT_TRUETYPE FileSubtype = 0x00000003
)

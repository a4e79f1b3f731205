// +build windows

package filetime

import "golang.org/x/sys/windows"

// FromSys converts a windows.Filetime as returned by syscalls like
// GetFileTime.
func FromSys(ft windows.Filetime) Filetime {
	return Join(ft.HighDateTime, ft.LowDateTime)
}

// Sys converts ft to the x/sys windows.Filetime layout.
func (ft Filetime) Sys() windows.Filetime {
	high, low := ft.Split()
	return windows.Filetime{
		HighDateTime: high,
		LowDateTime:  low,
	}
}

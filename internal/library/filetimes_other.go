//go:build !linux && !darwin

package library

import (
	"io/fs"
	"time"
)

// fileTimes falls back to the modification time; creation stays unknown.
func fileTimes(_ string, info fs.FileInfo) (accessed, created time.Time) {
	return info.ModTime(), time.Time{}
}

//go:build linux

package library

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes returns access and birth time. Birth time is zero when the
// kernel or filesystem does not record it.
func fileTimes(path string, info fs.FileInfo) (accessed, created time.Time) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_ATIME|unix.STATX_BTIME, &stx); err != nil {
		return info.ModTime(), time.Time{}
	}
	accessed = info.ModTime()
	if stx.Mask&unix.STATX_ATIME != 0 {
		accessed = time.Unix(stx.Atime.Sec, int64(stx.Atime.Nsec))
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		created = time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
	}
	return accessed, created
}

//go:build darwin

package library

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func fileTimes(path string, info fs.FileInfo) (accessed, created time.Time) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return info.ModTime(), time.Time{}
	}
	return time.Unix(st.Atim.Unix()), time.Unix(st.Btim.Unix())
}

package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"stitch/internal/library"
)

const timeLayout = "2006-01-02 15:04:05"

// Columns of the video table, in display order.
var Columns = []string{
	"#", "File Name", "Full Path", "Size",
	"Date Created", "Date Modified", "Date Accessed",
	"Duration (min)", "Resolution",
}

// VideoRow formats one descriptor as table cells.
func VideoRow(v library.Video) []string {
	return []string{
		strconv.Itoa(v.Index),
		v.Name,
		v.Path,
		humanize.Bytes(uint64(max(v.Size, 0))),
		FormatTime(v.Created),
		FormatTime(v.Modified),
		FormatTime(v.Accessed),
		fmt.Sprintf("%.2f", v.DurationMinutes),
		v.Resolution(),
	}
}

// FormatTime renders t, or "Unknown" when the filesystem did not report it.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Local().Format(timeLayout)
}

// VideoTable renders videos in the order given. The first column is always
// the scan index used to select videos on the command line.
func VideoTable(videos []library.Video) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			default:
				return cellStyle
			}
		}).
		Headers(Columns...)

	for _, v := range videos {
		t.Row(VideoRow(v)...)
	}
	return t.String()
}

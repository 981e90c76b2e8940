package daemon

import (
	"time"

	"github.com/dustin/go-humanize"

	"stitch/internal/library"
)

// ConfigResponse shows the stored folder and the directory it resolves to.
type ConfigResponse struct {
	Folder           string `json:"folder" example:"default"`
	WorkingDirectory string `json:"working_directory" example:"/home/me/.config/stitch/files"`
}

// ConfigUpdateRequest changes the working directory.
type ConfigUpdateRequest struct {
	Folder string `json:"folder" example:"/videos"`
}

// Video is one descriptor of the latest scan.
type Video struct {
	Index           int        `json:"index" example:"0"`
	Name            string     `json:"name" example:"holiday.mp4"`
	Folder          string     `json:"folder" example:"/videos"`
	Path            string     `json:"path" example:"/videos/holiday.mp4"`
	Size            int64      `json:"size" example:"1500000"`
	SizeHuman       string     `json:"size_human" example:"1.5 MB"`
	Created         *time.Time `json:"created" example:"2024-01-01T12:00:00Z"`
	Modified        time.Time  `json:"modified" example:"2024-01-01T12:00:00Z"`
	Accessed        *time.Time `json:"accessed" example:"2024-01-01T12:00:00Z"`
	DurationMinutes float64    `json:"duration_minutes" example:"1.5"`
	Frames          int        `json:"frames" example:"2700"`
	Resolution      string     `json:"resolution" example:"1920x1080"`
	Degraded        bool       `json:"degraded" example:"false"`
}

func videoFrom(v library.Video) Video {
	out := Video{
		Index:           v.Index,
		Name:            v.Name,
		Folder:          v.Folder,
		Path:            v.Path,
		Size:            v.Size,
		SizeHuman:       humanize.Bytes(uint64(max(v.Size, 0))),
		Modified:        v.Modified,
		DurationMinutes: v.DurationMinutes,
		Frames:          v.Frames,
		Resolution:      v.Resolution(),
		Degraded:        v.Degraded,
	}
	if !v.Created.IsZero() {
		created := v.Created
		out.Created = &created
	}
	if !v.Accessed.IsZero() {
		accessed := v.Accessed
		out.Accessed = &accessed
	}
	return out
}

// JoinRequest appends the addition video to the base video. Options are
// key=value ffmpeg arguments.
type JoinRequest struct {
	Base            int      `json:"base" example:"0"`
	Addition        int      `json:"addition" example:"1"`
	OutputName      string   `json:"output_name" example:"both.mp4"`
	Overwrite       bool     `json:"overwrite" example:"false"`
	BaseOptions     []string `json:"base_options" example:"ss=5"`
	AdditionOptions []string `json:"addition_options"`
	ConcatOptions   []string `json:"concat_options"`
}

// TrimRequest keeps part of a video. Times are seconds, MM:SS or HH:MM:SS.
// Duration wins over end when both are given.
type TrimRequest struct {
	Start      string  `json:"start" example:"00:10"`
	End        *string `json:"end" example:"50"`
	Duration   *string `json:"duration" example:"20"`
	OutputName string  `json:"output_name" example:"clip.mp4"`
	Overwrite  bool    `json:"overwrite" example:"false"`
}

// ThumbnailRequest tiles frames into one image. Zero columns or rows use
// the 5x4 default.
type ThumbnailRequest struct {
	Columns    int    `json:"columns" example:"5"`
	Rows       int    `json:"rows" example:"4"`
	OutputName string `json:"output_name" example:"sheet.png"`
	Overwrite  bool   `json:"overwrite" example:"false"`
}

// Operation records one media operation run by this process.
type Operation struct {
	ID         string    `json:"operation_id" example:"op_0b4e6f3c-3f0e-4c1a-9a52-9f0f0f6d1e2a"`
	Kind       string    `json:"kind" example:"trim"`
	Inputs     []string  `json:"inputs" example:"/videos/holiday.mp4"`
	Output     string    `json:"output,omitempty" example:"/videos/clip.mp4"`
	Status     string    `json:"status" example:"succeeded"`
	Error      string    `json:"error,omitempty" example:"ffmpeg failed: exit status 1"`
	StartedAt  time.Time `json:"started_at" example:"2024-01-01T12:00:00Z"`
	FinishedAt time.Time `json:"finished_at" example:"2024-01-01T12:00:05Z"`
}

// ErrorResponse represents a standard error payload.
type ErrorResponse struct {
	Error  string `json:"error" example:"description of the error"`
	Detail string `json:"detail,omitempty" example:"Invalid data found when processing input"`
}

// HealthResponse describes the health endpoint payload.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"0.1.0"`
}

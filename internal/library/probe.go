package library

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Values substituted when a file cannot be probed.
const (
	DefaultDurationSeconds = 60.0
	DefaultFrameRate       = 30.0
)

// Prober returns ffprobe's JSON description of a file.
type Prober interface {
	Probe(path string) (string, error)
}

// FFProbe runs ffprobe through ffmpeg-go.
type FFProbe struct{}

func (FFProbe) Probe(path string) (string, error) {
	return ffmpeg.Probe(path)
}

// MediaInfo is the subset of probe output the index keeps.
type MediaInfo struct {
	DurationSeconds float64
	FrameRate       float64
	Width           int
	Height          int
}

// Frames is the estimated frame count, duration times frame rate.
func (m MediaInfo) Frames() int {
	return int(m.DurationSeconds * m.FrameRate)
}

type probeOutput struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		Duration     string `json:"duration"`
		AvgFrameRate string `json:"avg_frame_rate"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// parseProbe extracts media info from the first video stream. Fields that
// cannot be read are replaced by the defaults and reported in the returned
// list of problems.
func parseProbe(raw string) (MediaInfo, []string) {
	info := MediaInfo{DurationSeconds: DefaultDurationSeconds, FrameRate: DefaultFrameRate}

	var out probeOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return info, []string{fmt.Sprintf("decode probe output: %v", err)}
	}

	idx := -1
	for i, s := range out.Streams {
		if s.CodecType == "video" {
			idx = i
			break
		}
	}
	if idx < 0 {
		return info, []string{"no video stream"}
	}
	stream := out.Streams[idx]

	var problems []string
	info.Width = stream.Width
	info.Height = stream.Height

	if d, ok := parsePositiveFloat(stream.Duration); ok {
		info.DurationSeconds = d
	} else if d, ok := parsePositiveFloat(out.Format.Duration); ok {
		info.DurationSeconds = d
	} else {
		problems = append(problems, "missing duration")
	}

	if fps, err := parseFrameRate(stream.AvgFrameRate); err == nil {
		info.FrameRate = fps
	} else {
		problems = append(problems, err.Error())
	}
	return info, problems
}

func parsePositiveFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// parseFrameRate accepts "30" or a rational such as "30000/1001".
func parseFrameRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	num, den, isRatio := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate %q", s)
	}
	if isRatio {
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("invalid frame rate %q", s)
		}
		n /= d
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid frame rate %q", s)
	}
	return n, nil
}

package editor

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"stitch/internal/apperr"
	"stitch/internal/library"
)

// Kind names a media operation.
type Kind string

const (
	KindJoin      Kind = "join"
	KindTrim      Kind = "trim"
	KindThumbnail Kind = "thumbnail-sheet"
)

// approvedSuffixes are compared against the final four characters of an
// output name.
var approvedSuffixes = map[Kind][]string{
	KindJoin:      {".mp4"},
	KindTrim:      {".mp4"},
	KindThumbnail: {".png", "jpeg", ".bmp", "tiff"},
}

// Thumbnail cell size and default grid.
const (
	ThumbnailWidth  = 320
	ThumbnailHeight = 240
	DefaultColumns  = 5
	DefaultRows     = 4
)

// JoinRequest appends Addition to the end of Base.
type JoinRequest struct {
	Base     library.Video
	Addition library.Video
	// OutputName is placed in Base's folder unless absolute. Empty picks a
	// dated default.
	OutputName string

	// Extra ffmpeg input options per input, and extra concat filter options.
	BaseInput     ffmpeg.KwArgs
	AdditionInput ffmpeg.KwArgs
	Concat        ffmpeg.KwArgs

	Overwrite bool
}

// TrimRequest keeps [Start, end) of Source. When both End and Duration are
// set, Duration wins. With neither, the range runs to the end of the file.
type TrimRequest struct {
	Source     library.Video
	OutputName string
	Start      float64
	End        *float64
	Duration   *float64
	Overwrite  bool
}

// ThumbnailRequest tiles Columns x Rows evenly spaced frames of Source.
type ThumbnailRequest struct {
	Source     library.Video
	OutputName string
	Columns    int
	Rows       int
	Overwrite  bool
}

// ValidateOutputName rejects names whose final four characters are not one
// of the approved extensions for kind.
func ValidateOutputName(kind Kind, name string) error {
	allowed, ok := approvedSuffixes[kind]
	if !ok {
		return apperr.Validationf("unknown operation %q", kind)
	}
	suffix := name
	if len(name) > 4 {
		suffix = name[len(name)-4:]
	}
	if slices.Contains(allowed, suffix) {
		return nil
	}
	if len(allowed) == 1 {
		return apperr.Validationf("output name %q is missing the %q extension", name, allowed[0])
	}
	return apperr.Validationf("output name %q is not an approved file type (%s)", name, strings.Join(allowed, ", "))
}

// EffectiveEnd resolves the trim range end. bounded is false when the trim
// runs to the end of the file.
func EffectiveEnd(start float64, end, duration *float64) (value float64, bounded bool) {
	switch {
	case duration != nil:
		return start + *duration, true
	case end != nil:
		return *end, true
	default:
		return 0, false
	}
}

// Stride is the number of frames between two thumbnails, at least 1.
func Stride(totalFrames, columns, rows int) int {
	cells := columns * rows
	if cells <= 0 {
		return 1
	}
	return max(1, totalFrames/cells)
}

// ParseOptions turns "key=value" pairs into ffmpeg keyword arguments.
func ParseOptions(pairs []string) (ffmpeg.KwArgs, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	kw := ffmpeg.KwArgs{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, apperr.Validationf("option %q must look like key=value", p)
		}
		kw[k] = strings.TrimSpace(v)
	}
	return kw, nil
}

func defaultJoinName(base, addition library.Video, now time.Time) string {
	return fmt.Sprintf("COMBINED - %s - %s-%s.mp4", now.Format(time.DateOnly), base.Stem, addition.Stem)
}

func defaultTrimName(src library.Video, start float64, now time.Time) string {
	return fmt.Sprintf("Trimmed - %s - %s - from %s.mp4", now.Format(time.DateOnly), src.Stem, FormatSeconds(start))
}

func defaultThumbnailName(src library.Video, now time.Time) string {
	return fmt.Sprintf("Thumbnail Sheet - %s - %s.png", src.Stem, now.Format(time.DateOnly))
}

// outputPath validates name (or picks the default) and places it in folder.
func outputPath(kind Kind, folder, name, fallback string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = fallback
	}
	if err := ValidateOutputName(kind, name); err != nil {
		return "", err
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(folder, name), nil
}

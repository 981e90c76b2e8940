package editor

import (
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"stitch/internal/apperr"
)

// reservedConcatKeys are computed from the inputs and may not be overridden.
var reservedConcatKeys = []string{"v", "a", "n"}

// joinGraph concatenates base then addition, video and audio, into out.
func joinGraph(base, addition, out string, baseIn, addIn, concatOpts ffmpeg.KwArgs) (*ffmpeg.Stream, error) {
	kw := ffmpeg.KwArgs{}
	for k, v := range concatOpts {
		for _, r := range reservedConcatKeys {
			if k == r {
				return nil, apperr.Validationf("concat option %q cannot be overridden", k)
			}
		}
		kw[k] = v
	}
	kw["v"] = 1
	kw["a"] = 1

	first := ffmpeg.Input(base, nonNil(baseIn))
	second := ffmpeg.Input(addition, nonNil(addIn))

	joined := ffmpeg.Concat([]*ffmpeg.Stream{
		first.Video(), first.Audio(),
		second.Video(), second.Audio(),
	}, kw).Node

	return ffmpeg.Output([]*ffmpeg.Stream{joined.Get("0"), joined.Get("1")}, out), nil
}

// trimGraph keeps [start, end) of src with timestamps reset to zero. A
// negative end runs to the end of the file.
func trimGraph(src, out string, start, end float64) *ffmpeg.Stream {
	in := ffmpeg.Input(src)

	window := ffmpeg.KwArgs{"start": FormatSeconds(start)}
	if end >= 0 {
		window["end"] = FormatSeconds(end)
	}

	video := in.Video().
		Filter("trim", ffmpeg.Args{}, window).
		Filter("setpts", ffmpeg.Args{"PTS-STARTPTS"})
	audio := in.Audio().
		Filter("atrim", ffmpeg.Args{}, window).
		Filter("asetpts", ffmpeg.Args{"PTS-STARTPTS"})

	joined := ffmpeg.Concat([]*ffmpeg.Stream{video, audio}, ffmpeg.KwArgs{"v": 1, "a": 1}).Node
	return ffmpeg.Output([]*ffmpeg.Stream{joined.Get("0"), joined.Get("1")}, out)
}

// thumbnailGraph samples every stride-th frame, labels it with its
// timestamp and tiles columns x rows of them into one image.
func thumbnailGraph(src, out string, stride, columns, rows int) *ffmpeg.Stream {
	return ffmpeg.
		Input(src).
		Filter("select", ffmpeg.Args{fmt.Sprintf("not(mod(n,%d))", stride)}).
		Filter("scale", ffmpeg.Args{strconv.Itoa(ThumbnailWidth), strconv.Itoa(ThumbnailHeight)}).
		// Filter option values reach ffmpeg unescaped, so the ':' is escaped here.
		Filter("drawtext", ffmpeg.Args{}, ffmpeg.KwArgs{
			"text":      `%{pts\:hms}`,
			"x":         10,
			"y":         10,
			"fontsize":  24,
			"fontcolor": "white",
		}).
		Filter("tile", ffmpeg.Args{fmt.Sprintf("%dx%d", columns, rows)}).
		Output(out, ffmpeg.KwArgs{"vsync": "vfr", "vframes": 1})
}

func nonNil(kw ffmpeg.KwArgs) ffmpeg.KwArgs {
	if kw == nil {
		return ffmpeg.KwArgs{}
	}
	return kw
}

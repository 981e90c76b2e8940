package library

import (
	"cmp"
	"slices"
	"strings"

	"stitch/internal/apperr"
)

type compareFunc func(a, b Video) int

var sortColumns = map[string]compareFunc{
	"#":             func(a, b Video) int { return cmp.Compare(a.Index, b.Index) },
	"file-name":     func(a, b Video) int { return strings.Compare(a.Name, b.Name) },
	"filename":      func(a, b Video) int { return strings.Compare(a.Name, b.Name) },
	"full-path":     func(a, b Video) int { return strings.Compare(a.Path, b.Path) },
	"fullpath":      func(a, b Video) int { return strings.Compare(a.Path, b.Path) },
	"size":          func(a, b Video) int { return cmp.Compare(a.Size, b.Size) },
	"date-created":  func(a, b Video) int { return a.Created.Compare(b.Created) },
	"date-modified": func(a, b Video) int { return a.Modified.Compare(b.Modified) },
	"date-accessed": func(a, b Video) int { return a.Accessed.Compare(b.Accessed) },
	"duration":      func(a, b Video) int { return cmp.Compare(a.DurationMinutes, b.DurationMinutes) },
	"resolution": func(a, b Video) int {
		if c := cmp.Compare(a.Width*a.Height, b.Width*b.Height); c != 0 {
			return c
		}
		return cmp.Compare(a.Width, b.Width)
	},
}

// SortKeys lists the accepted column names in a stable order.
func SortKeys() []string {
	keys := make([]string, 0, len(sortColumns))
	for k := range sortColumns {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SortVideos orders videos in place by the given columns, earlier keys taking
// precedence. Column names are case-insensitive and use '-' for spaces. The
// Index of each video is left untouched.
func SortVideos(videos []Video, keys []string, ascending bool) error {
	if len(keys) == 0 {
		return nil
	}
	cmps := make([]compareFunc, 0, len(keys))
	for _, k := range keys {
		c, ok := sortColumns[strings.ToLower(strings.TrimSpace(k))]
		if !ok {
			return apperr.Validationf("%q is not a valid sort column, available: %s", k, strings.Join(SortKeys(), ", "))
		}
		cmps = append(cmps, c)
	}

	slices.SortStableFunc(videos, func(a, b Video) int {
		for _, c := range cmps {
			r := c(a, b)
			if r == 0 {
				continue
			}
			if !ascending {
				r = -r
			}
			return r
		}
		return 0
	})
	return nil
}

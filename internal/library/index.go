package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"stitch/internal/apperr"
)

// DefaultExtension is the extension scanned when none is given.
const DefaultExtension = ".mp4"

type scanKey struct {
	dir       string
	ext       string
	recursive bool
}

// Index scans folders and memoizes the result for the life of the process.
type Index struct {
	prober Prober
	logger zerolog.Logger

	mu    sync.Mutex
	cache map[scanKey][]Video
}

// NewIndex returns an index that probes files with prober.
func NewIndex(prober Prober, logger zerolog.Logger) *Index {
	return &Index{
		prober: prober,
		logger: logger,
		cache:  make(map[scanKey][]Video),
	}
}

// Scan lists the files under dir whose extension matches ext, descending into
// subdirectories when recursive is set. A file that cannot be probed is still
// listed, with default media values.
func (x *Index) Scan(dir, ext string, recursive bool) ([]Video, error) {
	key := scanKey{dir: filepath.Clean(dir), ext: NormalizeExtension(ext), recursive: recursive}

	x.mu.Lock()
	defer x.mu.Unlock()
	if cached, ok := x.cache[key]; ok {
		return slices.Clone(cached), nil
	}

	paths, err := listFiles(key.dir, key.ext, key.recursive)
	if err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(paths))
	for i, path := range paths {
		v, err := x.describe(path)
		if err != nil {
			return nil, err
		}
		v.Index = i
		videos = append(videos, v)
	}
	x.logger.Debug().
		Str("dir", key.dir).
		Str("ext", key.ext).
		Bool("recursive", key.recursive).
		Int("videos", len(videos)).
		Msg("scanned folder")

	x.cache[key] = videos
	return slices.Clone(videos), nil
}

// Refresh drops every memoized scan.
func (x *Index) Refresh() {
	x.mu.Lock()
	x.cache = make(map[scanKey][]Video)
	x.mu.Unlock()
}

func (x *Index) describe(path string) (Video, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Video{}, fmt.Errorf("stat %s: %w", path, err)
	}
	accessed, created := fileTimes(path, info)

	name := filepath.Base(path)
	v := Video{
		Name:     name,
		Stem:     strings.TrimSuffix(name, filepath.Ext(name)),
		Folder:   filepath.Dir(path),
		Path:     path,
		Size:     info.Size(),
		Created:  created,
		Modified: info.ModTime(),
		Accessed: accessed,
	}

	media, degraded := x.probe(path)
	v.DurationMinutes = media.DurationSeconds / 60
	v.Frames = media.Frames()
	v.Width = media.Width
	v.Height = media.Height
	v.Degraded = degraded
	return v, nil
}

func (x *Index) probe(path string) (MediaInfo, bool) {
	raw, err := x.prober.Probe(path)
	if err != nil {
		x.logger.Warn().Err(err).Str("file", path).
			Msg("probe failed, assuming 60s at 30fps")
		return MediaInfo{DurationSeconds: DefaultDurationSeconds, FrameRate: DefaultFrameRate}, true
	}
	info, problems := parseProbe(raw)
	if len(problems) > 0 {
		x.logger.Warn().Strs("problems", problems).Str("file", path).
			Msg("incomplete probe output, defaults substituted")
		return info, true
	}
	return info, false
}

// NormalizeExtension lowercases ext and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func listFiles(dir, ext string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.Validationf("working directory %s does not exist", dir)
		}
		return nil, fmt.Errorf("stat working directory: %w", err)
	}
	if !info.IsDir() {
		return nil, apperr.Validationf("working directory %s is not a directory", dir)
	}

	matches := func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), ext)
	}

	var paths []string
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !matches(e.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
		return paths, nil
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !matches(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return paths, nil
}

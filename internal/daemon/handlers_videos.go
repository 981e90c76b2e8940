package daemon

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"stitch/internal/apperr"
	"stitch/internal/library"
)

// handleVideos godoc
// @Summary List videos
// @Description Rescans the working directory. Indices in the response select videos in later requests.
// @Tags videos
// @Produce json
// @Param ext query string false "File extension" default(.mp4)
// @Param recursive query bool false "Include subfolders"
// @Param sort query string false "Comma separated sort columns"
// @Param ascending query bool false "Sort order" default(true)
// @Success 200 {array} Video
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /videos [get]
func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ext := s.extension
	if v := q.Get("ext"); v != "" {
		ext = v
	}
	recursive, err := boolQuery(q.Get("recursive"), s.recursive)
	if err != nil {
		writeAppError(w, err)
		return
	}
	ascending, err := boolQuery(q.Get("ascending"), true)
	if err != nil {
		writeAppError(w, err)
		return
	}

	s.index.Refresh()
	videos, err := s.scan(ext, recursive)
	if err != nil {
		writeAppError(w, err)
		return
	}

	var keys []string
	for _, raw := range q["sort"] {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}
	if len(keys) > 0 {
		if err := library.SortVideos(videos, keys, ascending); err != nil {
			writeAppError(w, err)
			return
		}
	}

	list := make([]Video, 0, len(videos))
	for _, v := range videos {
		list = append(list, videoFrom(v))
	}
	writeJSON(w, http.StatusOK, list)
}

// handleGetVideo godoc
// @Summary Get video details
// @Description Returns the descriptor at a position of the latest scan.
// @Tags videos
// @Produce json
// @Param index path int true "Scan index"
// @Success 200 {object} Video
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /videos/{index} [get]
func (s *Server) handleGetVideo(w http.ResponseWriter, r *http.Request) {
	v, err := s.lookup(r)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, videoFrom(v))
}

// handleVideoFile godoc
// @Summary Download a video
// @Description Streams the file of a video of the latest scan. Supports range requests.
// @Tags videos
// @Produce octet-stream
// @Param index path int true "Scan index"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /videos/{index}/file [get]
func (s *Server) handleVideoFile(w http.ResponseWriter, r *http.Request) {
	v, err := s.lookup(r)
	if err != nil {
		writeAppError(w, err)
		return
	}
	http.ServeFile(w, r, v.Path)
}

// scan lists the working directory and keeps the result as the latest scan.
func (s *Server) scan(ext string, recursive bool) ([]library.Video, error) {
	dir, err := s.store.WorkingDirectory()
	if err != nil {
		return nil, err
	}
	videos, err := s.index.Scan(dir, ext, recursive)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.videos = append([]library.Video(nil), videos...)
	s.scanned = true
	s.mu.Unlock()
	return videos, nil
}

// lookup resolves the {index} path parameter against the latest scan.
func (s *Server) lookup(r *http.Request) (library.Video, error) {
	i, err := indexParam(r)
	if err != nil {
		return library.Video{}, err
	}
	videos, err := s.latest()
	if err != nil {
		return library.Video{}, err
	}
	if i < 0 || i >= len(videos) {
		return library.Video{}, fmt.Errorf("video %d: %w", i, errNotFound)
	}
	return videos[i], nil
}

// latest returns the most recent scan, scanning with the defaults if nothing
// was listed yet.
func (s *Server) latest() ([]library.Video, error) {
	s.mu.RLock()
	videos, scanned := s.videos, s.scanned
	s.mu.RUnlock()
	if scanned {
		return videos, nil
	}
	return s.scan(s.extension, s.recursive)
}

func boolQuery(raw string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperr.Validationf("invalid boolean %q", raw)
	}
	return v, nil
}

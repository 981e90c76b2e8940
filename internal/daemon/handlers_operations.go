package daemon

import (
	"errors"
	"io"
	"net/http"

	"stitch/internal/editor"
	"stitch/internal/library"
)

// handleJoin godoc
// @Summary Join two videos
// @Description Appends the addition video to the base video and writes the result next to the base video. Runs synchronously.
// @Tags operations
// @Accept json
// @Produce json
// @Param request body JoinRequest true "Videos to join, by scan index"
// @Success 200 {object} Operation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /videos/join [post]
func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json payload")
		return
	}
	base, err := s.at(req.Base)
	if err != nil {
		writeAppError(w, err)
		return
	}
	addition, err := s.at(req.Addition)
	if err != nil {
		writeAppError(w, err)
		return
	}

	join := editor.JoinRequest{
		Base:       base,
		Addition:   addition,
		OutputName: req.OutputName,
		Overwrite:  req.Overwrite,
	}
	if join.BaseInput, err = editor.ParseOptions(req.BaseOptions); err != nil {
		writeAppError(w, err)
		return
	}
	if join.AdditionInput, err = editor.ParseOptions(req.AdditionOptions); err != nil {
		writeAppError(w, err)
		return
	}
	if join.Concat, err = editor.ParseOptions(req.ConcatOptions); err != nil {
		writeAppError(w, err)
		return
	}

	op, err := s.runOperation(string(editor.KindJoin), []string{base.Path, addition.Path}, func() (string, error) {
		return s.editor.Join(r.Context(), join)
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

// handleTrim godoc
// @Summary Trim a video
// @Description Keeps [start, end) of a video. Duration wins over end; with neither the trim runs to the end of the file.
// @Tags operations
// @Accept json
// @Produce json
// @Param index path int true "Scan index"
// @Param request body TrimRequest true "Range to keep"
// @Success 200 {object} Operation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /videos/{index}/trim [post]
func (s *Server) handleTrim(w http.ResponseWriter, r *http.Request) {
	src, err := s.lookup(r)
	if err != nil {
		writeAppError(w, err)
		return
	}
	var req TrimRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	trim := editor.TrimRequest{Source: src, OutputName: req.OutputName, Overwrite: req.Overwrite}
	if trim.Start, err = editor.ParseTimestamp(req.Start); err != nil {
		writeAppError(w, err)
		return
	}
	if trim.End, err = optionalTimestamp(req.End); err != nil {
		writeAppError(w, err)
		return
	}
	if trim.Duration, err = optionalTimestamp(req.Duration); err != nil {
		writeAppError(w, err)
		return
	}

	op, err := s.runOperation(string(editor.KindTrim), []string{src.Path}, func() (string, error) {
		return s.editor.Trim(r.Context(), trim)
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

// handleThumbnailSheet godoc
// @Summary Build a thumbnail sheet
// @Description Tiles evenly spaced, timestamped frames of a video into one image.
// @Tags operations
// @Accept json
// @Produce json
// @Param index path int true "Scan index"
// @Param request body ThumbnailRequest false "Grid and output"
// @Success 200 {object} Operation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /videos/{index}/thumbnail-sheet [post]
func (s *Server) handleThumbnailSheet(w http.ResponseWriter, r *http.Request) {
	src, err := s.lookup(r)
	if err != nil {
		writeAppError(w, err)
		return
	}
	// The body is optional; an empty one keeps the defaults.
	var req ThumbnailRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json payload")
		return
	}
	if req.Columns == 0 {
		req.Columns = editor.DefaultColumns
	}
	if req.Rows == 0 {
		req.Rows = editor.DefaultRows
	}

	sheet := editor.ThumbnailRequest{
		Source:     src,
		OutputName: req.OutputName,
		Columns:    req.Columns,
		Rows:       req.Rows,
		Overwrite:  req.Overwrite,
	}
	op, err := s.runOperation(string(editor.KindThumbnail), []string{src.Path}, func() (string, error) {
		return s.editor.ThumbnailSheet(r.Context(), sheet)
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

// handleOperations godoc
// @Summary List operations
// @Description Returns the operations run by this process, oldest first.
// @Tags operations
// @Produce json
// @Success 200 {array} Operation
// @Router /operations [get]
func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.history())
}

// at resolves a scan index given in a request body.
func (s *Server) at(i int) (library.Video, error) {
	videos, err := s.latest()
	if err != nil {
		return library.Video{}, err
	}
	return library.Select(videos, i)
}

func optionalTimestamp(raw *string) (*float64, error) {
	if raw == nil {
		return nil, nil
	}
	v, err := editor.ParseTimestamp(*raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

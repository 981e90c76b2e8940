package daemon

import (
	"net/http"
)

// handleHealth godoc
// @Summary Health check
// @Description Returns service health and version.
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: Version})
}

// handleConfig godoc
// @Summary Get or change the working directory
// @Description Returns the stored folder on GET and changes it on PUT. The folder "default" selects the built-in directory.
// @Tags config
// @Accept json
// @Produce json
// @Param request body ConfigUpdateRequest false "New folder (PUT only)"
// @Success 200 {object} ConfigResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /config [get]
// @Router /config [put]
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPut {
		var req ConfigUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json payload")
			return
		}
		if err := s.store.SetWorkingDirectory(req.Folder); err != nil {
			writeAppError(w, err)
			return
		}
		s.mu.Lock()
		s.videos = nil
		s.scanned = false
		s.mu.Unlock()
		s.logger.Info().Str("folder", req.Folder).Msg("working directory changed")
	}

	folder, err := s.store.CurrentSetting()
	if err != nil {
		writeAppError(w, err)
		return
	}
	dir, err := s.store.WorkingDirectory()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ConfigResponse{Folder: folder, WorkingDirectory: dir})
}

package daemon

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"stitch/internal/apperr"
)

var errNotFound = errors.New("not found")

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeAppError maps error kinds to status codes. Engine failures carry the
// engine's diagnostic output.
func writeAppError(w http.ResponseWriter, err error) {
	if errors.Is(err, errNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	switch ae.Kind {
	case apperr.KindValidation:
		writeError(w, http.StatusBadRequest, ae.Error())
	case apperr.KindOperation:
		msg := ae.Msg
		if ae.Err != nil {
			msg += ": " + ae.Err.Error()
		}
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: msg, Detail: ae.Detail})
	default:
		writeError(w, http.StatusInternalServerError, ae.Error())
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func newID(prefix string) string {
	return prefix + uuid.NewString()
}

// indexParam reads the {index} path parameter.
func indexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validationf("index %q is not a number", raw)
	}
	return i, nil
}

package daemon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"stitch/internal/apperr"
	"stitch/internal/config"
	"stitch/internal/editor"
	"stitch/internal/library"
)

type fakeProber struct{}

func (fakeProber) Probe(string) (string, error) {
	return `{"streams":[{"codec_type":"video","duration":"60","avg_frame_rate":"30/1","width":1280,"height":720}]}`, nil
}

type fakeRunner struct {
	calls [][]string
	err   error
}

func (f *fakeRunner) Run(_ context.Context, args []string) error {
	f.calls = append(f.calls, args)
	return f.err
}

type fixture struct {
	handler http.Handler
	runner  *fakeRunner
	videos  string
	config  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	videos := filepath.Join(root, "videos")
	if err := os.MkdirAll(videos, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.mp4", "b.mp4"} {
		if err := os.WriteFile(filepath.Join(videos, name), []byte("data-"+name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfgPath := filepath.Join(root, "app_config.json")
	data, _ := json.Marshal(map[string]string{"folder": videos})
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := config.NewStore(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	runner := &fakeRunner{}
	srv := NewServer(Options{
		Store:     store,
		Index:     library.NewIndex(fakeProber{}, zerolog.Nop()),
		Editor:    editor.New(runner, zerolog.Nop()),
		Logger:    zerolog.Nop(),
		Recursive: true,
	})
	return &fixture{handler: srv.Routes(), runner: runner, videos: videos, config: cfgPath}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[HealthResponse](t, rec); got.Status != "ok" || got.Version != Version {
		t.Fatalf("unexpected health: %+v", got)
	}
}

func TestConfig(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/config", nil)
	if got := decode[ConfigResponse](t, rec); got.Folder != f.videos || got.WorkingDirectory != f.videos {
		t.Fatalf("unexpected config: %+v", got)
	}

	rec = f.do(t, http.MethodPut, "/config", ConfigUpdateRequest{Folder: filepath.Join(f.videos, "missing")})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing folder status = %d", rec.Code)
	}

	rec = f.do(t, http.MethodPut, "/config", ConfigUpdateRequest{Folder: config.DefaultFolder})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	got := decode[ConfigResponse](t, rec)
	if got.Folder != config.DefaultFolder || got.WorkingDirectory != filepath.Join(filepath.Dir(f.config), "files") {
		t.Fatalf("unexpected config: %+v", got)
	}
}

func TestListVideos(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/videos?sort=file-name&ascending=false", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	got := decode[[]Video](t, rec)
	if len(got) != 2 || got[0].Name != "b.mp4" || got[0].Index != 1 {
		t.Fatalf("unexpected list: %+v", got)
	}
	if got[0].Resolution != "1280x720" || got[0].Frames != 1800 || got[0].DurationMinutes != 1 {
		t.Fatalf("unexpected descriptor: %+v", got[0])
	}

	if rec := f.do(t, http.MethodGet, "/videos?sort=bitrate", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown sort status = %d", rec.Code)
	}
}

func TestGetVideo(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/videos/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode[Video](t, rec); got.Name != "b.mp4" {
		t.Fatalf("unexpected video: %+v", got)
	}

	if rec := f.do(t, http.MethodGet, "/videos/9", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("out of range status = %d", rec.Code)
	}
	if rec := f.do(t, http.MethodGet, "/videos/x", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad index status = %d", rec.Code)
	}
}

func TestVideoFile(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/videos/0/file", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "data-a.mp4" {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestJoin(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/videos/join", JoinRequest{Base: 0, Addition: 1, OutputName: "both.mp4"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	op := decode[Operation](t, rec)
	if !strings.HasPrefix(op.ID, "op_") || op.Status != "succeeded" || op.Output != filepath.Join(f.videos, "both.mp4") {
		t.Fatalf("unexpected operation: %+v", op)
	}
	if len(f.runner.calls) != 1 {
		t.Fatalf("runner calls = %d", len(f.runner.calls))
	}

	if rec := f.do(t, http.MethodPost, "/videos/join", JoinRequest{Base: 0, Addition: 5}); rec.Code != http.StatusBadRequest {
		t.Fatalf("out of range body index status = %d", rec.Code)
	}
}

func TestTrim(t *testing.T) {
	f := newFixture(t)
	end, duration := "50", "20"
	rec := f.do(t, http.MethodPost, "/videos/0/trim", TrimRequest{Start: "10", End: &end, Duration: &duration, OutputName: "clip.mp4"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	args := strings.Join(f.runner.calls[0], " ")
	if !strings.Contains(args, "end=30") {
		t.Fatalf("duration should win: %s", args)
	}

	if rec := f.do(t, http.MethodPost, "/videos/0/trim", TrimRequest{Start: "soon"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad start status = %d", rec.Code)
	}
}

func TestThumbnailSheet(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/videos/1/thumbnail-sheet", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	args := strings.Join(f.runner.calls[0], " ")
	if !strings.Contains(args, "tile=5x4") || !strings.Contains(args, "90))") {
		t.Fatalf("unexpected args: %s", args)
	}

	rec = f.do(t, http.MethodPost, "/videos/1/thumbnail-sheet", ThumbnailRequest{OutputName: "sheet.gif"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad extension status = %d", rec.Code)
	}
}

func TestThumbnailSheetEmptyChunkedBody(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodPost, "/videos/0/thumbnail-sheet", strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if args := strings.Join(f.runner.calls[0], " "); !strings.Contains(args, "tile=5x4") {
		t.Fatalf("empty body should use the default grid: %s", args)
	}

	rec = f.do(t, http.MethodPost, "/videos/0/thumbnail-sheet", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("no body status = %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/videos/0/thumbnail-sheet", strings.NewReader("{"))
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("truncated json status = %d", rec.Code)
	}
}

func TestOperationFailure(t *testing.T) {
	f := newFixture(t)
	f.runner.err = apperr.Operation("ffmpeg failed", "moov atom not found", errors.New("exit status 1"))

	rec := f.do(t, http.MethodPost, "/videos/0/thumbnail-sheet", ThumbnailRequest{Columns: 2, Rows: 2})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[ErrorResponse](t, rec); got.Detail != "moov atom not found" {
		t.Fatalf("unexpected error body: %+v", got)
	}

	rec = f.do(t, http.MethodGet, "/operations", nil)
	ops := decode[[]Operation](t, rec)
	if len(ops) != 1 || ops[0].Status != "failed" || ops[0].Kind != string(editor.KindThumbnail) {
		t.Fatalf("unexpected history: %+v", ops)
	}
}

func TestMissingConfig(t *testing.T) {
	f := newFixture(t)
	if err := os.Remove(f.config); err != nil {
		t.Fatal(err)
	}
	if rec := f.do(t, http.MethodGet, "/videos", nil); rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

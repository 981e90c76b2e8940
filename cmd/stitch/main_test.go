package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stitch/internal/apperr"
	"stitch/internal/library"
)

type fakeProber struct{}

func (fakeProber) Probe(string) (string, error) {
	return `{"streams":[{"codec_type":"video","duration":"12","avg_frame_rate":"25/1","width":640,"height":360}]}`, nil
}

type fakeRunner struct {
	calls [][]string
}

func (f *fakeRunner) Run(_ context.Context, args []string) error {
	f.calls = append(f.calls, args)
	return nil
}

type harness struct {
	app    *app
	out    *bytes.Buffer
	runner *fakeRunner
	opened []string
	config string
	videos string
}

// newHarness sets up a config file pointing at a folder holding a.mp4 and
// b.mp4, and an app whose engine calls are recorded.
func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	root := t.TempDir()
	videos := filepath.Join(root, "videos")
	if err := os.MkdirAll(videos, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.mp4", "b.mp4", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(videos, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := filepath.Join(root, "app_config.json")
	data, _ := json.Marshal(map[string]string{"folder": videos})
	if err := os.WriteFile(cfg, data, 0o644); err != nil {
		t.Fatal(err)
	}

	h := &harness{out: &bytes.Buffer{}, runner: &fakeRunner{}, config: cfg, videos: videos}
	h.app = newApp(strings.NewReader(stdin), h.out, io.Discard)
	h.app.prober = fakeProber{}
	h.app.runner = h.runner
	h.app.interactive = func(io.Reader) bool { return false }
	h.app.open = func(_ context.Context, path string) error {
		h.opened = append(h.opened, path)
		return nil
	}
	return h
}

func (h *harness) run(args ...string) error {
	full := append([]string{"stitch", "--config", h.config}, args...)
	return h.app.command().Run(context.Background(), full)
}

func (h *harness) lastArgs(t *testing.T) string {
	t.Helper()
	if len(h.runner.calls) == 0 {
		t.Fatal("ffmpeg was not run")
	}
	return strings.Join(h.runner.calls[len(h.runner.calls)-1], " ")
}

func TestShowTable(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run("show"); err != nil {
		t.Fatal(err)
	}
	out := h.out.String()
	for _, want := range []string{"a.mp4", "b.mp4", "640x360", "0.20"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "notes.txt") {
		t.Errorf("non-video file listed:\n%s", out)
	}
}

func TestShowJSONSorted(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run("show", "--json", "--sort", "file-name", "--ascending=false"); err != nil {
		t.Fatal(err)
	}
	var got []library.Video
	if err := json.Unmarshal(h.out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, h.out.String())
	}
	if len(got) != 2 || got[0].Name != "b.mp4" || got[0].Index != 1 || got[1].Index != 0 {
		t.Fatalf("unexpected listing: %+v", got)
	}
	if got[0].Frames != 300 {
		t.Fatalf("frames = %d, want 300", got[0].Frames)
	}
}

func TestShowUnknownSortKey(t *testing.T) {
	h := newHarness(t, "")
	err := h.run("show", "--sort", "bitrate")
	if apperr.ExitCode(err) != 2 {
		t.Fatalf("expected validation exit code, got %v", err)
	}
}

func TestMissingConfig(t *testing.T) {
	h := newHarness(t, "")
	h.config = filepath.Join(t.TempDir(), "missing.json")
	err := h.run("show")
	if apperr.ExitCode(err) != 3 {
		t.Fatalf("expected config exit code, got %v", err)
	}
}

func TestInitAndPwd(t *testing.T) {
	h := newHarness(t, "")
	h.config = filepath.Join(t.TempDir(), "stitch", "app_config.json")
	if err := h.run("init"); err != nil {
		t.Fatal(err)
	}
	h.out.Reset()
	if err := h.run("pwd"); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(filepath.Dir(h.config), "files")
	if got := strings.TrimSpace(h.out.String()); got != want {
		t.Fatalf("pwd = %q, want %q", got, want)
	}
}

func TestAdd(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run("add", "--output", "both.mp4", "--base-opt", "ss=1", "0", "1"); err != nil {
		t.Fatal(err)
	}
	args := h.lastArgs(t)
	if !strings.Contains(args, filepath.Join(h.videos, "both.mp4")) || !strings.Contains(args, "concat") {
		t.Fatalf("unexpected args: %s", args)
	}
	if strings.Index(args, "a.mp4") > strings.Index(args, "b.mp4") {
		t.Fatalf("base should come first: %s", args)
	}
	if !strings.Contains(h.out.String(), "both.mp4") {
		t.Fatalf("missing success message: %s", h.out.String())
	}
}

func TestAddBadOutputName(t *testing.T) {
	h := newHarness(t, "")
	err := h.run("add", "--output", "both.avi", "0", "1")
	if apperr.ExitCode(err) != 2 {
		t.Fatalf("expected validation exit code, got %v", err)
	}
	if len(h.runner.calls) != 0 {
		t.Fatal("ffmpeg should not run")
	}
}

func TestTrimDurationWinsOverEnd(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run("cut", "--end", "50", "--duration", "20", "--output", "clip.mp4", "0", "10"); err != nil {
		t.Fatal(err)
	}
	args := h.lastArgs(t)
	if !strings.Contains(args, "end=30") || strings.Contains(args, "end=50") {
		t.Fatalf("unexpected trim range: %s", args)
	}
}

func TestTrimMissingStart(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run("trim", "0"); apperr.ExitCode(err) != 2 {
		t.Fatalf("expected validation exit code, got %v", err)
	}
}

func TestThumbnailSheet(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run("thumbnail-sheet", "1"); err != nil {
		t.Fatal(err)
	}
	args := h.lastArgs(t)
	if !strings.Contains(args, "15))") || !strings.Contains(args, "tile=5x4") {
		t.Fatalf("unexpected args: %s", args)
	}
	if !strings.Contains(args, "Thumbnail Sheet - b - ") {
		t.Fatalf("default name not used: %s", args)
	}
}

func TestPlay(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run("play", "0"); err != nil {
		t.Fatal(err)
	}
	h.app.intn = func(int) int { return 1 }
	if err := h.run("play", "--shuffle"); err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(h.videos, "a.mp4"), filepath.Join(h.videos, "b.mp4")}
	if len(h.opened) != 2 || h.opened[0] != want[0] || h.opened[1] != want[1] {
		t.Fatalf("opened %v, want %v", h.opened, want)
	}
}

func TestPlayOutOfRange(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run("play", "7"); apperr.ExitCode(err) != 2 {
		t.Fatalf("expected validation exit code, got %v", err)
	}
}

func TestChangeDirectoryFlag(t *testing.T) {
	h := newHarness(t, "")
	next := t.TempDir()
	if err := h.run("change-directory", "--dir", next); err != nil {
		t.Fatal(err)
	}
	h.out.Reset()
	if err := h.run("pwd"); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(h.out.String()); got != next {
		t.Fatalf("pwd = %q, want %q", got, next)
	}
}

func TestChangeDirectoryMissingTarget(t *testing.T) {
	h := newHarness(t, "")
	err := h.run("cd", "--dir", filepath.Join(t.TempDir(), "nope"))
	if apperr.ExitCode(err) != 2 {
		t.Fatalf("expected validation exit code, got %v", err)
	}
}

func TestChangeDirectoryRequiresTerminal(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run("cd"); apperr.ExitCode(err) != 2 {
		t.Fatalf("expected validation exit code, got %v", err)
	}
}

func TestChangeDirectoryPrompt(t *testing.T) {
	next := t.TempDir()
	h := newHarness(t, next+"\ny\n")
	h.app.interactive = func(io.Reader) bool { return true }
	if err := h.run("cd"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(h.config)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), next) {
		t.Fatalf("config not updated: %s", data)
	}
}

func TestChangeDirectorySame(t *testing.T) {
	h := newHarness(t, "\n")
	h.app.interactive = func(io.Reader) bool { return true }
	if err := h.run("cd"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.out.String(), "Directory is the same!") {
		t.Fatalf("unexpected output: %s", h.out.String())
	}
}

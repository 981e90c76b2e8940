package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"stitch/internal/apperr"
)

func writeConfig(t *testing.T, body string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app_config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestWorkingDirectoryDefaultSentinel(t *testing.T) {
	s := writeConfig(t, `{"folder": "default"}`)

	dir, err := s.WorkingDirectory()
	if err != nil {
		t.Fatalf("WorkingDirectory: %v", err)
	}
	if dir != s.FallbackDirectory() {
		t.Fatalf("got %q, want fallback %q", dir, s.FallbackDirectory())
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("fallback directory should be created on demand: %v", err)
	}
}

func TestWorkingDirectoryVerbatim(t *testing.T) {
	s := writeConfig(t, `{"folder": "/does/not/need/to/exist"}`)

	dir, err := s.WorkingDirectory()
	if err != nil {
		t.Fatalf("WorkingDirectory: %v", err)
	}
	if dir != "/does/not/need/to/exist" {
		t.Fatalf("stored path should be returned verbatim, got %q", dir)
	}
}

func TestWorkingDirectoryConfigErrors(t *testing.T) {
	missing, err := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	cases := map[string]*Store{
		"missing file": missing,
		"malformed":    writeConfig(t, `{"folder": `),
		"no folder":    writeConfig(t, `{"other": 1}`),
		"not a string": writeConfig(t, `{"folder": 12}`),
		"not object":   writeConfig(t, `null`),
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.WorkingDirectory()
			if !apperr.Is(err, apperr.KindConfig) {
				t.Fatalf("expected config error, got %v", err)
			}
		})
	}
}

func TestSetDefaultThenGetReturnsFallback(t *testing.T) {
	s := writeConfig(t, `{"folder": "/somewhere"}`)

	if err := s.SetWorkingDirectory(DefaultFolder); err != nil {
		t.Fatalf("SetWorkingDirectory: %v", err)
	}
	dir, err := s.WorkingDirectory()
	if err != nil {
		t.Fatalf("WorkingDirectory: %v", err)
	}
	if dir != s.FallbackDirectory() {
		t.Fatalf("got %q, want %q", dir, s.FallbackDirectory())
	}
}

func TestSetWorkingDirectoryPreservesOtherKeys(t *testing.T) {
	s := writeConfig(t, `{"folder": "default", "theme": "dark", "limits": {"max": 3}}`)
	target := t.TempDir()

	if err := s.SetWorkingDirectory(target); err != nil {
		t.Fatalf("SetWorkingDirectory: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("config no longer valid json: %v", err)
	}
	if doc["folder"] != target {
		t.Fatalf("folder = %v, want %s", doc["folder"], target)
	}
	if doc["theme"] != "dark" {
		t.Fatalf("theme key lost: %v", doc)
	}
	if limits, ok := doc["limits"].(map[string]any); !ok || limits["max"] != float64(3) {
		t.Fatalf("nested key lost: %v", doc)
	}
}

func TestSetWorkingDirectoryRejectsMissingPath(t *testing.T) {
	s := writeConfig(t, `{"folder": "default"}`)

	err := s.SetWorkingDirectory(filepath.Join(t.TempDir(), "missing"))
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.SetWorkingDirectory(file); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for a file, got %v", err)
	}

	setting, err := s.CurrentSetting()
	if err != nil || setting != DefaultFolder {
		t.Fatalf("rejected change must not touch the file: %q %v", setting, err)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app_config.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	created, err := s.Init()
	if err != nil || !created {
		t.Fatalf("Init: created=%v err=%v", created, err)
	}
	setting, err := s.CurrentSetting()
	if err != nil || setting != DefaultFolder {
		t.Fatalf("fresh config should hold the sentinel: %q %v", setting, err)
	}

	created, err = s.Init()
	if err != nil || created {
		t.Fatalf("second Init should be a no-op: created=%v err=%v", created, err)
	}
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stitch/internal/apperr"
)

const (
	// DefaultFolder is the stored sentinel meaning "use the fallback directory".
	DefaultFolder = "default"

	appDirName     = "stitch"
	configFileName = "app_config.json"
	fallbackDir    = "files"
	folderKey      = "folder"
)

// Store reads and writes the single JSON config file.
type Store struct {
	path string
}

// NewStore returns a store backed by path. An empty path resolves to
// DefaultPath.
func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Store{path: filepath.Clean(path)}, nil
}

// DefaultPath is <user config dir>/stitch/app_config.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Path returns the config file path.
func (s *Store) Path() string { return s.path }

// FallbackDirectory is used whenever the stored folder is the sentinel. It
// sits next to the config file.
func (s *Store) FallbackDirectory() string {
	return filepath.Join(filepath.Dir(s.path), fallbackDir)
}

// Init writes a config holding the sentinel if no file exists yet.
func (s *Store) Init() (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, apperr.Configf(err, "stat config %s", s.path)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false, apperr.Configf(err, "create config dir")
	}
	doc := map[string]json.RawMessage{}
	raw, _ := json.Marshal(DefaultFolder)
	doc[folderKey] = raw
	if err := s.write(doc); err != nil {
		return false, err
	}
	return true, nil
}

// CurrentSetting returns the raw stored folder value, which may be the
// sentinel.
func (s *Store) CurrentSetting() (string, error) {
	doc, err := s.read()
	if err != nil {
		return "", err
	}
	return folderOf(doc, s.path)
}

// WorkingDirectory resolves the configured folder. The fallback directory is
// created on demand; a stored path is returned verbatim.
func (s *Store) WorkingDirectory() (string, error) {
	folder, err := s.CurrentSetting()
	if err != nil {
		return "", err
	}
	if folder != DefaultFolder {
		return folder, nil
	}
	dir := s.FallbackDirectory()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperr.Configf(err, "create fallback directory %s", dir)
	}
	return dir, nil
}

// SetWorkingDirectory stores a new folder, or the sentinel. A real path must
// exist and be a directory. All other keys in the file are kept.
func (s *Store) SetWorkingDirectory(folder string) error {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return apperr.Validationf("directory must not be empty")
	}
	if folder != DefaultFolder {
		info, err := os.Stat(folder)
		if err != nil {
			return apperr.Validationf("the directory %s does not exist", folder)
		}
		if !info.IsDir() {
			return apperr.Validationf("%s is not a directory", folder)
		}
	}

	doc, err := s.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(folder)
	if err != nil {
		return fmt.Errorf("encode folder: %w", err)
	}
	doc[folderKey] = raw
	return s.write(doc)
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.Configf(nil, "config file %s not found (run `stitch init`)", s.path)
		}
		return nil, apperr.Configf(err, "read config %s", s.path)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperr.Configf(err, "parse config %s", s.path)
	}
	if doc == nil {
		return nil, apperr.Configf(nil, "config %s is not a JSON object", s.path)
	}
	return doc, nil
}

func (s *Store) write(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')

	perm := os.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(s.path, data, perm); err != nil {
		return apperr.Configf(err, "write config %s", s.path)
	}
	return nil
}

func folderOf(doc map[string]json.RawMessage, path string) (string, error) {
	raw, ok := doc[folderKey]
	if !ok {
		return "", apperr.Configf(nil, "config %s has no %q key", path, folderKey)
	}
	var folder string
	if err := json.Unmarshal(raw, &folder); err != nil {
		return "", apperr.Configf(err, "config %s: %q must be a string", path, folderKey)
	}
	if strings.TrimSpace(folder) == "" {
		return "", apperr.Configf(nil, "config %s: %q is empty", path, folderKey)
	}
	return folder, nil
}

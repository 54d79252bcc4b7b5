package host

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

const (
	settingsDirName  = "shootday"
	settingsFileName = "host.yaml"

	// dataDirectoryKey is the settings key the capture application reads
	dataDirectoryKey = "data_directory"
)

// DefaultSettingsPath is host.yaml under the user config directory
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Errorf("finding user config directory: %w", err)
	}
	return filepath.Join(dir, settingsDirName, settingsFileName), nil
}

// 💾 FileHost keeps the host configuration in a YAML settings file. Keys it
// does not know about are kept as they are.
type FileHost struct {
	path   string
	window Window
	mu     sync.Mutex
}

var _ Host = (*FileHost)(nil)

// 🏭 NewFileHost creates a host backed by the settings file at path
func NewFileHost(path string, window Window) *FileHost {
	return &FileHost{
		path:   filepath.Clean(path),
		window: window,
	}
}

func (h *FileHost) MainWindow() Window {
	return h.window
}

// Path returns the settings file location
func (h *FileHost) Path() string {
	return h.path
}

func (h *FileHost) SetDataDirectory(ctx context.Context, path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	settings, err := h.load()
	if err != nil {
		return err
	}
	settings[dataDirectoryKey] = path

	if err := h.save(settings); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("settings", h.path).Str("data_directory", path).Msg("data directory registered")
	return nil
}

func (h *FileHost) load() (map[string]any, error) {
	settings := map[string]any{}

	data, err := os.ReadFile(h.path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, errors.Errorf("reading host settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, errors.Errorf("parsing host settings %s: %w", h.path, err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}

func (h *FileHost) save(settings map[string]any) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Errorf("encoding host settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return errors.Errorf("creating settings directory: %w", err)
	}

	tempPath := h.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, h.path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

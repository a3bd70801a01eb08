//go:build !android

package platform

import (
	"os"
	"path/filepath"
)

// platformDataDir resolves the desktop data directory under the user
// config dir (e.g. %AppData% on Windows, ~/.config on Linux,
// ~/Library/Application Support on macOS).
func platformDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		wd, werr := os.Getwd()
		if werr != nil {
			return "."
		}
		return wd
	}
	dir := filepath.Join(base, "oxy-playground")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "."
	}
	return dir
}

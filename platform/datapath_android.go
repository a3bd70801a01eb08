//go:build android

package platform

import "os"

// platformDataDir resolves the Android data directory. The app loader
// exposes the internal files directory via the FILESDIR environment
// variable; fall back to the temp dir when unset.
func platformDataDir() string {
	if dir := os.Getenv("FILESDIR"); dir != "" {
		return dir
	}
	return os.TempDir()
}

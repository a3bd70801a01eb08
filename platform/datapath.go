// Package platform resolves per-platform filesystem locations for
// user data such as scene snapshots and logs.
package platform

// DataDir returns the writable directory for application data,
// creating it if necessary. Falls back to the current working
// directory when the platform location cannot be resolved.
//
// Returns:
//   - string: the data directory path
func DataDir() string {
	return platformDataDir()
}

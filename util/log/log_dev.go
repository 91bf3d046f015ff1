//go:build !release

package log

const debugEnabled = true

// UseFile is a no-op outside release builds, logs stay on stderr. It returns
// the file name a release build would write to.
func UseFile(session string) (string, error) {
	return fileName(session), nil
}

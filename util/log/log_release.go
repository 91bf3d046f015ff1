//go:build release

package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dixieflatline76/Starpaper/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const debugEnabled = false

func init() {
	if _, err := UseFile(config.AppName); err != nil {
		// Keep stderr rather than refusing to start
		log.Printf("Log file unavailable: %v", err)
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// logDir is the per-user cache dir on Windows and ~/.starpaper elsewhere.
func logDir() (string, error) {
	if runtime.GOOS == "windows" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, config.LogWinSubDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, config.LogSubDir), nil
}

// UseFile sends the log to a rotated file named after session, so each sub
// command keeps its own history. It returns the file path.
func UseFile(session string) (string, error) {
	dir, err := logDir()
	if err != nil {
		return "", fmt.Errorf("locating log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(dir, fileName(session))
	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})
	return path, nil
}

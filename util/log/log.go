// Package log wraps the standard logger. Debug output is compiled out of
// release builds, which also write to a rotated file instead of stderr.
package log

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dixieflatline76/Starpaper/config"
)

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	log.Output(2, fmt.Sprintln(v...))
}

// Debug logs with a [DEBUG] prefix outside release builds
func Debug(v ...interface{}) {
	if debugEnabled {
		log.Output(2, "[DEBUG] "+fmt.Sprint(v...))
	}
}

// Debugf logs with a [DEBUG] prefix outside release builds
func Debugf(format string, v ...interface{}) {
	if debugEnabled {
		log.Output(2, "[DEBUG] "+fmt.Sprintf(format, v...))
	}
}

// Fatal logs and exits with status 1
func Fatal(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf logs and exits with status 1
func Fatalf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// fileName turns a session name such as "Starpaper scrape" into "starpaper-scrape.log".
func fileName(session string) string {
	name := strings.ToLower(strings.Join(strings.Fields(session), "-"))
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '-'
		}
		return r
	}, name)
	if name == "" {
		name = strings.ToLower(config.AppName)
	}
	return name + config.LogExt
}

package config

import "strings"

// AppVersion is the version of the application.
var AppVersion string // Or get it from version.txt during build

// AppName is the name of the application.
const AppName = "Starpaper"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// Wiki locations used when no config file overrides them.
const (
	DefaultBaseURL     = "https://alchemystars.fandom.com"
	DefaultCategoryURL = DefaultBaseURL + "/wiki/Category:Characters?from=%C2%A1"
)

// Default file names, relative to the working directory.
const (
	DefaultDataFile  = "data.csv"
	DefaultCacheFile = "char_pages.json"
)

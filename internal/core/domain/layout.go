package domain

import "path/filepath"

const (
	// RefractDirName is the name of the internal project metadata directory.
	RefractDirName = ".refract"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "refract.yaml"

	// ComponentsDirName is the default name of the components directory.
	ComponentsDirName = "components"

	// StylesDirName is the name of the scaffolded styles directory.
	StylesDirName = "styles"

	// NotifySocketName is the name of the default notification socket.
	NotifySocketName = "notify.sock"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// SourceSuffix is the file suffix of loadable source modules.
	SourceSuffix = ".go"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultNotifySocketPath returns the default path for the notification socket.
// It joins .refract and notify.sock.
func DefaultNotifySocketPath() string {
	return filepath.Join(RefractDirName, NotifySocketName)
}

// DefaultDebugLogPath returns the default path for the debug log.
// It joins .refract and debug.log.
func DefaultDebugLogPath() string {
	return filepath.Join(RefractDirName, DebugLogFile)
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no refract.yaml can be found from the working directory upward.
	ErrConfigNotFound = zerr.New("could not find refract.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMainFileMissing is returned at startup when the configured main file does not exist.
	ErrMainFileMissing = zerr.New("main file not found")

	// ErrComponentsDirMissing is returned at startup when the configured components directory does not exist.
	ErrComponentsDirMissing = zerr.New("components directory not found")

	// ErrLoadFailed is returned when a source file cannot be read or fails to evaluate.
	ErrLoadFailed = zerr.New("module load failed")

	// ErrUnknownPath is returned when a modify or remove event references a path with no live module record.
	ErrUnknownPath = zerr.New("no module record for path")

	// ErrSinkUnavailable is returned when the invalidation notification cannot be delivered.
	ErrSinkUnavailable = zerr.New("notification sink unavailable")

	// ErrWatchFailed is returned when the file watcher cannot be started on the project root.
	ErrWatchFailed = zerr.New("failed to watch project root")

	// ErrPathResolveFailed is returned when a path cannot be canonicalized.
	ErrPathResolveFailed = zerr.New("failed to resolve path")

	// ErrScaffoldTargetNotEmpty is returned when generate targets a non-empty directory without --overwrite.
	ErrScaffoldTargetNotEmpty = zerr.New("target directory is not empty")

	// ErrScaffoldTargetIsFile is returned when generate targets an existing file.
	ErrScaffoldTargetIsFile = zerr.New("target path is a file, not a directory")

	// ErrReloadLoopFailed is returned when the watch loop terminates abnormally.
	ErrReloadLoopFailed = zerr.New("reload loop failed")
)

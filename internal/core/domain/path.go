package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// ResolvePath canonicalizes a path to its absolute, symlink-resolved form.
// Every module record and registration key goes through this so that the
// same file reached via different relative paths maps to one identity.
//
// A path that no longer exists (a removed file) still resolves: its parent
// directory is resolved and the base name re-joined, so removal events can
// be matched against records created while the file existed.
func ResolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, ErrPathResolveFailed.Error())
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", zerr.Wrap(err, ErrPathResolveFailed.Error())
	}

	dir, base := filepath.Split(abs)
	resolvedDir, dirErr := filepath.EvalSymlinks(filepath.Clean(dir))
	if dirErr != nil {
		// Parent is gone too. The cleaned absolute path is the best identity we have.
		return filepath.Clean(abs), nil
	}
	return filepath.Join(resolvedDir, base), nil
}

// ModuleName derives the logical module identity from a source path.
// It is the file's base name without the source suffix (the stem).
func ModuleName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// UnderDir reports whether path lies beneath dir. Both arguments must
// already be resolved absolute paths.
func UnderDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && !hasDotDotPrefix(rel)
}

func hasDotDotPrefix(rel string) bool {
	if rel == ".." {
		return true
	}
	return len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}

package domain

// Project describes the layout of a refract project as read from refract.yaml.
// All paths are resolved to absolute form by the config loader.
type Project struct {
	// Root is the directory containing the configuration file. The watcher
	// observes this directory recursively.
	Root string

	// Main is the path of the application entry module, loaded eagerly at
	// startup and reloaded on change. It contributes no routes.
	Main string

	// ComponentsDir is the directory whose source files register components.
	// Only events under this directory produce route invalidations.
	ComponentsDir string

	// Preprocessor is an optional source file evaluated once at startup,
	// outside the reload pipeline. Empty when not configured.
	Preprocessor string

	// RuntimeTasks are opaque task descriptors passed through to the
	// application layer unmodified. This core never interprets them.
	RuntimeTasks []string
}

// HasPreprocessor reports whether the project configures a preprocessor.
func (p *Project) HasPreprocessor() bool {
	return p.Preprocessor != ""
}

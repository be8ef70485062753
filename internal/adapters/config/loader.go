// Package config provides the configuration loader for refract.
package config

import (
	"os"
	"path/filepath"

	"github.com/refract-dev/refract/internal/core/domain"
	"github.com/refract-dev/refract/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds refract.yaml starting from cwd, parses it, and returns the
// resolved project layout. The main file and components directory must
// exist on disk: the reload pipeline cannot start from a partial registry,
// so their absence fails startup instead of being papered over.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file Configfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	root, err := domain.ResolvePath(filepath.Dir(configPath))
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		Root:         root,
		RuntimeTasks: file.RuntimeTasks,
	}

	main := file.Main
	if main == "" {
		main = "main" + domain.SourceSuffix
	}
	project.Main, err = resolveProjectPath(root, main)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(project.Main); statErr != nil {
		return nil, zerr.With(domain.ErrMainFileMissing, "path", project.Main)
	}

	components := file.Components
	if components == "" {
		components = domain.ComponentsDirName
	}
	project.ComponentsDir, err = resolveProjectPath(root, components)
	if err != nil {
		return nil, err
	}
	if info, statErr := os.Stat(project.ComponentsDir); statErr != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrComponentsDirMissing, "path", project.ComponentsDir)
	}

	if file.Preprocessor != "" {
		project.Preprocessor, err = resolveProjectPath(root, file.Preprocessor)
		if err != nil {
			return nil, err
		}
	}

	return project, nil
}

// DiscoverRoot walks up from cwd to the directory containing refract.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// resolveProjectPath resolves a config-relative path against the project
// root; absolute paths pass through resolution unchanged.
func resolveProjectPath(root, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return domain.ResolvePath(path)
}

func readAndUnmarshalYAML(configPath string, out any) error {
	//nolint:gosec // G304: configPath is discovered by walking up from cwd, not user input
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

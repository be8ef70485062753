package app

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/zerr"

	"github.com/refract-dev/refract/internal/core/domain"
)

//go:embed templates
var templatesFS embed.FS

// scaffoldFiles maps embedded templates to their destination inside the new
// project, relative to the target directory.
var scaffoldFiles = map[string]string{
	"templates/refract.yaml.tmpl":          domain.ConfigFileName,
	"templates/main.go.tmpl":               "main" + domain.SourceSuffix,
	"templates/components/example.go.tmpl": filepath.Join(domain.ComponentsDirName, "example"+domain.SourceSuffix),
	"templates/styles/globals.css.tmpl":    filepath.Join(domain.StylesDirName, "globals.css"),
}

// scaffoldData is the template context for generated files.
type scaffoldData struct {
	Name string
}

// Generate scaffolds a new project at target. The target may be missing or
// an existing empty directory; a populated directory is refused unless
// overwrite is set, and a file target is always refused.
func (a *App) Generate(target string, overwrite bool) error {
	info, err := os.Stat(target)
	switch {
	case err == nil && !info.IsDir():
		return zerr.With(domain.ErrScaffoldTargetIsFile, "path", target)
	case err == nil && !overwrite:
		entries, readErr := os.ReadDir(target)
		if readErr != nil {
			return zerr.Wrap(readErr, "failed to inspect target directory")
		}
		if len(entries) > 0 {
			return zerr.With(domain.ErrScaffoldTargetNotEmpty, "path", target)
		}
	case err != nil && !os.IsNotExist(err):
		return zerr.Wrap(err, "failed to inspect target directory")
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPathResolveFailed.Error())
	}
	data := scaffoldData{Name: filepath.Base(abs)}

	for src, dst := range scaffoldFiles {
		if err := a.renderScaffold(src, filepath.Join(target, dst), data); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Join(target, domain.RefractDirName), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create metadata directory")
	}

	a.logger.Info(fmt.Sprintf("scaffolded project %s at %s", data.Name, target))
	return nil
}

func (a *App) renderScaffold(src, dst string, data scaffoldData) error {
	raw, err := templatesFS.ReadFile(src)
	if err != nil {
		return zerr.Wrap(err, "failed to read template")
	}

	tmpl, err := template.New(filepath.Base(src)).Parse(string(raw))
	if err != nil {
		return zerr.Wrap(err, "failed to parse template")
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return zerr.Wrap(err, "failed to render template")
	}

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create project directory")
	}
	if err := os.WriteFile(dst, []byte(out.String()), domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write project file")
	}
	return nil
}

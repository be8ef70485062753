package app

import (
	"fmt"
	"strings"

	"github.com/refract-dev/refract/internal/core/domain"
	"github.com/refract-dev/refract/internal/ui/style"
)

// printBanner renders the startup panel: what is being watched, which
// routes the eager load discovered, and where notifications go.
func (a *App) printBanner(project *domain.Project, routes []string, target string) {
	var b strings.Builder

	b.WriteString(style.BannerTitle.Render("refract"))
	b.WriteString(style.BannerMuted.Render(" watching "))
	b.WriteString(project.Root)
	b.WriteString("\n\n")

	if len(routes) == 0 {
		b.WriteString(style.BannerMuted.Render(style.Circle + " no routes registered"))
		b.WriteString("\n")
	}
	for _, route := range routes {
		b.WriteString(fmt.Sprintf("%s %s\n", style.BannerTitle.Render(style.Dot), route))
	}

	if len(project.RuntimeTasks) > 0 {
		b.WriteString("\n")
		for _, task := range project.RuntimeTasks {
			b.WriteString(style.BannerMuted.Render(fmt.Sprintf("%s task %s", style.Arrow, task)))
			b.WriteString("\n")
		}
	}

	if target == "" {
		target = "unix://" + domain.DefaultNotifySocketPath()
	}
	b.WriteString("\n")
	b.WriteString(style.BannerMuted.Render("notifying " + target))

	fmt.Fprintln(a.out, style.Banner.Render(b.String()))
}

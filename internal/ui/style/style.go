// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Ember  = lipgloss.Color("#F97316")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// Banner is the style used for the startup endpoint panel.
var Banner = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Ember).
	Padding(0, 2)

// BannerTitle is the style for the product line above the endpoint panel.
var BannerTitle = lipgloss.NewStyle().
	Foreground(Ember).
	Bold(true)

// BannerMuted is the style for secondary banner text.
var BannerMuted = lipgloss.NewStyle().
	Foreground(Slate)

package helpers

import (
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/forge-mcp/forgeconf/engine/resolver"
)

// secretRunPattern matches a run of 8 alphanumerics followed by at least 24
// more. Long opaque runs like that are almost always API keys embedded in
// URLs.
var secretRunPattern = regexp.MustCompile(`([A-Za-z0-9]{8})[A-Za-z0-9]{24,}`)

// MaskSecrets hides likely API keys in display output, keeping the first 8
// characters. Display heuristic only, not a redaction guarantee.
func MaskSecrets(s string) string {
	return secretRunPattern.ReplaceAllString(s, "$1…")
}

// Printer renders human-readable status output, optionally colored.
type Printer struct {
	present lipgloss.Style
	missing lipgloss.Style
	warning lipgloss.Style
	accent  lipgloss.Style
}

// NewPrinter builds a printer for the given color mode (auto, on, off).
func NewPrinter(colorMode string) *Printer {
	p := &Printer{}
	if colorEnabled(colorMode) {
		p.present = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		p.missing = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
		p.warning = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		p.accent = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	} else {
		plain := lipgloss.NewStyle()
		p.present, p.missing, p.warning, p.accent = plain, plain, plain, plain
	}
	return p
}

func colorEnabled(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// KeyStatusLine renders one validation entry the way the check command
// prints it.
func (p *Printer) KeyStatusLine(status resolver.KeyStatus) string {
	label := "required"
	if !status.Required {
		label = "optional"
	}
	switch {
	case status.Present:
		return fmt.Sprintf("%s (%s)", p.present.Render("✅ "+status.Name), label)
	case status.Required:
		return fmt.Sprintf("%s (%s)", p.missing.Render("❌ "+status.Name), label)
	default:
		return fmt.Sprintf("%s (%s)", p.warning.Render("⚠️  "+status.Name), label)
	}
}

// NetworkLine renders one network listing entry with secrets masked.
func (p *Printer) NetworkLine(name, url string) string {
	return fmt.Sprintf("  %s: %s", p.accent.Render(name), MaskSecrets(url))
}

// Header renders a section header.
func (p *Printer) Header(text string) string {
	return p.accent.Render(text)
}

// Warning renders an advisory line.
func (p *Printer) Warning(text string) string {
	return p.warning.Render(text)
}

// Failure renders a fatal line.
func (p *Printer) Failure(text string) string {
	return p.missing.Render(text)
}

package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours and metrics of one style.
type Palette struct {
	Foreground string
	Background string
	// Border is derived from Background when empty.
	Border     string
	Radius     int
	FontFamily string
}

var palettes = map[Style]Palette{
	Default: {
		Foreground: "#222222",
		Background: "#eeeeee",
		Radius:     3,
		FontFamily: "var(--font-monospace)",
	},
	GitHub: {
		Foreground: "#1f2328",
		Background: "#f6f8fa",
		Border:     "#d1d9e0",
		Radius:     6,
		FontFamily: "ui-monospace, SFMono-Regular, Menlo, monospace",
	},
	StackOverflow: {
		Foreground: "#0c0d0e",
		Background: "#e3e6e8",
		Radius:     3,
		FontFamily: "-apple-system, 'Segoe UI', 'Liberation Sans', sans-serif",
	},
}

// PaletteFor returns the palette of s, using Default for unknown styles.
func PaletteFor(s Style) Palette {
	p, ok := palettes[s]
	if !ok {
		p = palettes[Default]
	}
	if p.Border == "" {
		p.Border = shade(p.Background, 0.25)
	}
	return p
}

// shade darkens a hex colour towards black by t in Lab space.
func shade(hex string, t float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{R: 0, G: 0, B: 0}
	return c.BlendLab(black, t).Clamped().Hex()
}

// CSS returns the stylesheet rules for s, scoped to its body class.
func CSS(s Style) string {
	p := PaletteFor(s)
	shadow := shade(p.Border, 0.2)

	var b strings.Builder
	fmt.Fprintf(&b, "body.%s kbd {\n", s.ClassName())
	fmt.Fprintf(&b, "  display: inline-block;\n")
	fmt.Fprintf(&b, "  padding: 0.1em 0.4em;\n")
	fmt.Fprintf(&b, "  font-family: %s;\n", p.FontFamily)
	fmt.Fprintf(&b, "  font-size: 0.85em;\n")
	fmt.Fprintf(&b, "  line-height: 1.4;\n")
	fmt.Fprintf(&b, "  color: %s;\n", p.Foreground)
	fmt.Fprintf(&b, "  background-color: %s;\n", p.Background)
	fmt.Fprintf(&b, "  border: 1px solid %s;\n", p.Border)
	fmt.Fprintf(&b, "  border-radius: %dpx;\n", p.Radius)
	fmt.Fprintf(&b, "  box-shadow: inset 0 -1px 0 %s;\n", shadow)
	b.WriteString("}\n")
	return b.String()
}

// Stylesheet returns the rules for every style.
func Stylesheet() string {
	var b strings.Builder
	for i, s := range All() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(CSS(s))
	}
	return b.String()
}

// Terminal returns the lipgloss style used to draw a key cap for s.
func Terminal(s Style) lipgloss.Style {
	return TerminalWith(lipgloss.DefaultRenderer(), s)
}

// TerminalWith is Terminal bound to a specific renderer.
func TerminalWith(r *lipgloss.Renderer, s Style) lipgloss.Style {
	p := PaletteFor(s)
	return r.NewStyle().
		Foreground(lipgloss.Color(p.Foreground)).
		Background(lipgloss.Color(p.Background)).
		BorderForeground(lipgloss.Color(p.Border)).
		Bold(s == StackOverflow).
		PaddingLeft(1).
		PaddingRight(1)
}

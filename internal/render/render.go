// Package render displays documents containing <kbd> spans.
//
// HTML converts markdown to a standalone page whose body carries the active
// style class, so the page looks the way the host would draw it. Terminal
// draws each span as a key cap for previews on the command line.
package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/term"

	"github.com/dshills/kbdwrap/internal/kbd"
	"github.com/dshills/kbdwrap/internal/style"
)

var spanPattern = regexp.MustCompile(regexp.QuoteMeta(kbd.Open) + `(.*?)` + regexp.QuoteMeta(kbd.Close))

// markdown keeps raw HTML so <kbd> spans reach the output.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// HTML renders md to a complete HTML page styled with s.
func HTML(md []byte, s style.Style) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	out.WriteString(style.CSS(s))
	out.WriteString("</style>\n</head>\n")
	fmt.Fprintf(&out, "<body class=\"%s\">\n", html.EscapeString(s.ClassName()))
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}

// Terminal replaces every <kbd> span in text with a key cap drawn in s.
// With color off each span becomes [label].
func Terminal(text string, s style.Style, color bool) string {
	return TerminalWith(lipgloss.DefaultRenderer(), text, s, color)
}

// TerminalWith is Terminal bound to a specific renderer.
func TerminalWith(r *lipgloss.Renderer, text string, s style.Style, color bool) string {
	if !color {
		return spanPattern.ReplaceAllString(text, "[$1]")
	}

	keyCap := style.TerminalWith(r, s)
	return spanPattern.ReplaceAllStringFunc(text, func(m string) string {
		label := m[len(kbd.Open) : len(m)-len(kbd.Close)]
		return keyCap.Render(label)
	})
}

// Spans returns the labels of the <kbd> spans in text, in order.
func Spans(text string) []string {
	matches := spanPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	labels := make([]string, len(matches))
	for i, m := range matches {
		labels[i] = m[1]
	}
	return labels
}

// ColorEnabled reports whether w is a terminal that should receive colour.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

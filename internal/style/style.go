// Package style defines the visual styles for <kbd> elements.
//
// Each style is identified on the document body by one class name of the
// form kbd-style-NAME. Exactly one such class is present while the plugin is
// loaded; Apply switches it and Clear removes it.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle indicates a style name outside the supported set.
var ErrUnknownStyle = errors.New("unknown kbd style")

// ClassPrefix starts every style class name.
const ClassPrefix = "kbd-style-"

// Style names a visual theme for <kbd> elements.
type Style string

// Supported styles.
const (
	Default       Style = "default"
	GitHub        Style = "github"
	StackOverflow Style = "stackoverflow"
)

// All returns the supported styles in display order.
func All() []Style {
	return []Style{Default, GitHub, StackOverflow}
}

// Parse returns the style named s. Matching ignores case and surrounding
// space.
func Parse(s string) (Style, error) {
	st := Style(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
	return st, nil
}

// Valid reports whether s is a supported style.
func (s Style) Valid() bool {
	switch s {
	case Default, GitHub, StackOverflow:
		return true
	}
	return false
}

// String returns the style name.
func (s Style) String() string {
	return string(s)
}

// ClassName returns the body class that selects s.
func (s Style) ClassName() string {
	return ClassPrefix + string(s)
}

// LabelKey returns the translation key of the style's display name.
func (s Style) LabelKey() string {
	return "style-" + string(s)
}

// ClassNames returns the class names of every supported style.
func ClassNames() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.ClassName()
	}
	return names
}

// Apply removes every style class from cl and adds the one for s.
func Apply(cl *ClassList, s Style) {
	cl.Remove(ClassNames()...)
	cl.Add(s.ClassName())
}

// Clear removes every style class from cl.
func Clear(cl *ClassList) {
	cl.Remove(ClassNames()...)
}

// Active returns the style whose class is present in cl.
func Active(cl *ClassList) (Style, bool) {
	for _, s := range All() {
		if cl.Contains(s.ClassName()) {
			return s, true
		}
	}
	return "", false
}

package glowutils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/glow/glow"
)

// StringTemplate is a StringSource that rewrites the text of another source. Replacements
// apply in the order they were added; a #version line and #define lines are injected at
// the top of the result. The template follows changes of the wrapped source.
type StringTemplate interface {
	glow.StringSource
	glow.ChangeListener

	// Source returns the wrapped source.
	//
	// Returns:
	//   - glow.StringSource: the wrapped source
	Source() glow.StringSource

	// Replace substitutes every occurrence of old with replacement.
	//
	// Parameters:
	//   - old: the text to find
	//   - replacement: the text to insert
	Replace(old, replacement string)

	// SetVersion sets the #version directive, e.g. "330 core". Any #version line of the
	// wrapped source is dropped. An empty string keeps the wrapped source's own line.
	//
	// Parameters:
	//   - version: the directive argument
	SetVersion(version string)

	// Define adds or replaces a "#define name value" line.
	//
	// Parameters:
	//   - name: the macro name
	//   - value: the macro value, may be empty
	Define(name, value string)

	// Undefine removes a macro added with Define.
	//
	// Parameters:
	//   - name: the macro name
	Undefine(name string)

	// ClearReplacements removes all replacements and defines.
	ClearReplacements()
}

type replacement struct {
	old, new string
}

// stringTemplate implements StringTemplate.
type stringTemplate struct {
	glow.StaticStringSource
	source       glow.StringSource
	replacements []replacement
	version      string
	defines      map[string]string
}

var _ StringTemplate = &stringTemplate{}

// NewStringTemplate wraps source.
//
// Parameters:
//   - source: the source to rewrite
//
// Returns:
//   - StringTemplate: the template
func NewStringTemplate(source glow.StringSource) StringTemplate {
	t := &stringTemplate{
		StaticStringSource: glow.NewStaticStringSource(source.String()),
		source:             source,
		defines:            make(map[string]string),
	}
	source.RegisterListener(t)
	return t
}

func (t *stringTemplate) Source() glow.StringSource {
	return t.source
}

func (t *stringTemplate) Notify(glow.Changeable) {
	t.update()
}

func (t *stringTemplate) Replace(old, with string) {
	for i, r := range t.replacements {
		if r.old == old {
			t.replacements[i].new = with
			t.update()
			return
		}
	}
	t.replacements = append(t.replacements, replacement{old: old, new: with})
	t.update()
}

func (t *stringTemplate) SetVersion(version string) {
	t.version = version
	t.update()
}

func (t *stringTemplate) Define(name, value string) {
	t.defines[name] = value
	t.update()
}

func (t *stringTemplate) Undefine(name string) {
	delete(t.defines, name)
	t.update()
}

func (t *stringTemplate) ClearReplacements() {
	t.replacements = nil
	t.defines = make(map[string]string)
	t.update()
}

// update recomputes the text and notifies listeners if it changed.
func (t *stringTemplate) update() {
	text := t.render()
	if text == t.String() {
		return
	}
	t.SetString(text)
}

func (t *stringTemplate) render() string {
	body := t.source.String()
	for _, r := range t.replacements {
		body = strings.ReplaceAll(body, r.old, r.new)
	}

	if t.version == "" && len(t.defines) == 0 {
		return body
	}

	version := ""
	if t.version != "" {
		version = "#version " + t.version
	}
	// The #version directive must stay the first line, so a source-provided one is hoisted
	// above the defines.
	if first, rest, ok := strings.Cut(body, "\n"); ok || strings.HasPrefix(body, "#version") {
		if strings.HasPrefix(strings.TrimSpace(first), "#version") {
			if version == "" {
				version = strings.TrimSpace(first)
			}
			body = rest
		}
	}

	var b strings.Builder
	if version != "" {
		b.WriteString(version)
		b.WriteByte('\n')
	}
	names := make([]string, 0, len(t.defines))
	for name := range t.defines {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v := t.defines[name]; v != "" {
			fmt.Fprintf(&b, "#define %s %s\n", name, v)
		} else {
			fmt.Fprintf(&b, "#define %s\n", name)
		}
	}
	b.WriteString(body)
	return b.String()
}

package glow

import "strings"

// StringSource provides shader source text and notifies listeners when it changes.
type StringSource interface {
	Changeable

	// String returns the complete source text.
	//
	// Returns:
	//   - string: the source
	String() string

	// Strings returns the source split into the parts that are passed to the driver.
	//
	// Returns:
	//   - []string: the source parts
	Strings() []string
}

// StaticStringSource is a StringSource holding an in-memory string.
type StaticStringSource interface {
	StringSource

	// SetString replaces the text and notifies listeners.
	//
	// Parameters:
	//   - s: the new text
	SetString(s string)
}

// CompositeStringSource concatenates other sources and forwards their changes.
type CompositeStringSource interface {
	StringSource
	ChangeListener

	// AppendSource adds a part at the end.
	//
	// Parameters:
	//   - source: the source to append
	AppendSource(source StringSource)

	// Sources returns the parts in order.
	//
	// Returns:
	//   - []StringSource: the parts
	Sources() []StringSource
}

type staticStringSource struct {
	changeNotifier
	text string
}

var _ StaticStringSource = &staticStringSource{}

// NewStaticStringSource creates a source holding text.
func NewStaticStringSource(text string) StaticStringSource {
	s := &staticStringSource{text: text}
	s.owner = s
	return s
}

func (s *staticStringSource) String() string {
	return s.text
}

func (s *staticStringSource) Strings() []string {
	return []string{s.text}
}

func (s *staticStringSource) SetString(text string) {
	s.text = text
	s.Changed()
}

type compositeStringSource struct {
	changeNotifier
	sources []StringSource
}

var _ CompositeStringSource = &compositeStringSource{}

// NewCompositeStringSource creates a source that concatenates sources in order.
func NewCompositeStringSource(sources ...StringSource) CompositeStringSource {
	c := &compositeStringSource{}
	c.owner = c
	for _, s := range sources {
		c.add(s)
	}
	return c
}

func (c *compositeStringSource) add(source StringSource) {
	c.sources = append(c.sources, source)
	source.RegisterListener(c)
}

func (c *compositeStringSource) AppendSource(source StringSource) {
	c.add(source)
	c.Changed()
}

func (c *compositeStringSource) Sources() []StringSource {
	return append([]StringSource(nil), c.sources...)
}

func (c *compositeStringSource) String() string {
	var b strings.Builder
	for _, s := range c.sources {
		b.WriteString(s.String())
	}
	return b.String()
}

func (c *compositeStringSource) Strings() []string {
	var out []string
	for _, s := range c.sources {
		out = append(out, s.Strings()...)
	}
	return out
}

func (c *compositeStringSource) Notify(Changeable) {
	c.Changed()
}

// Package manifest assembles JAR manifest attribute sets from project
// metadata, manifest configuration, and a resolved dependency set. Only the
// attribute values are in scope; archive container writing belongs to the
// consuming plugin.
package manifest

import (
	"fmt"
	"io"
)

// Attribute is a single manifest attribute. Attributes keep their insertion
// order, which is what the manifest serialization preserves.
type Attribute struct {
	Name  string
	Value string
}

// Section is a named secondary manifest section.
type Section struct {
	Name  string
	attrs []Attribute
	index map[string]int
}

// Set adds or replaces an attribute. Replacing keeps the original position.
func (s *Section) Set(name, value string) {
	if i, ok := s.index[name]; ok {
		s.attrs[i].Value = value
		return
	}
	s.index[name] = len(s.attrs)
	s.attrs = append(s.attrs, Attribute{Name: name, Value: value})
}

// Get returns the attribute value and whether it is present.
func (s *Section) Get(name string) (string, bool) {
	if i, ok := s.index[name]; ok {
		return s.attrs[i].Value, true
	}
	return "", false
}

// Attributes returns the section attributes in insertion order.
func (s *Section) Attributes() []Attribute {
	out := make([]Attribute, len(s.attrs))
	copy(out, s.attrs)
	return out
}

// Manifest is an ordered main attribute section plus named sections.
type Manifest struct {
	main     []Attribute
	index    map[string]int
	sections []*Section
}

// New creates a manifest pre-seeded with Manifest-Version: 1.0.
func New() *Manifest {
	m := &Manifest{index: make(map[string]int)}
	m.Set("Manifest-Version", "1.0")
	return m
}

// Set adds or replaces a main-section attribute, keeping the position of a
// replaced attribute. Empty values are kept so the attribute still appears.
func (m *Manifest) Set(name, value string) {
	if i, ok := m.index[name]; ok {
		m.main[i].Value = value
		return
	}
	m.index[name] = len(m.main)
	m.main = append(m.main, Attribute{Name: name, Value: value})
}

// Get returns a main-section attribute value and whether it is present.
func (m *Manifest) Get(name string) (string, bool) {
	if i, ok := m.index[name]; ok {
		return m.main[i].Value, true
	}
	return "", false
}

// Main returns the main-section attributes in insertion order.
func (m *Manifest) Main() []Attribute {
	out := make([]Attribute, len(m.main))
	copy(out, m.main)
	return out
}

// AddSection appends a named section and returns it. An existing section
// with the same name is returned instead of duplicated.
func (m *Manifest) AddSection(name string) *Section {
	for _, s := range m.sections {
		if s.Name == name {
			return s
		}
	}
	s := &Section{Name: name, index: make(map[string]int)}
	m.sections = append(m.sections, s)
	return s
}

// Sections returns the named sections in insertion order.
func (m *Manifest) Sections() []*Section {
	out := make([]*Section, len(m.sections))
	copy(out, m.sections)
	return out
}

// WriteTo emits the manifest as plain "Name: value" lines, one blank line
// before each named section. Line wrapping is the archiver's concern, not
// ours; the values themselves are final.
func (m *Manifest) WriteTo(w io.Writer) (int64, error) {
	var total int64

	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	for _, attr := range m.main {
		if err := write("%s: %s\n", attr.Name, attr.Value); err != nil {
			return total, err
		}
	}
	for _, s := range m.sections {
		if err := write("\nName: %s\n", s.Name); err != nil {
			return total, err
		}
		for _, attr := range s.attrs {
			if err := write("%s: %s\n", attr.Name, attr.Value); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

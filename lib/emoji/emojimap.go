package emoji

import (
	"sort"
	"strings"
	"sync"
)

// Entry is a single shortcode name and the glyph it stands for.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Glyph string `json:"glyph" yaml:"glyph"`
}

// Map is an ordered, immutable mapping from shortcode names to glyphs. Many
// names may share a glyph; when converting a glyph back to a name the name
// that was inserted first wins.
//
// A nil *Map is a valid empty map. A Map must not be copied after first use.
type Map struct {
	names  []string
	glyphs map[string]string

	reverseOnce sync.Once
	reverse     reverseIndex
}

// reverseIndex maps glyphs back to shortcode names. bare is keyed by the
// glyph with emoji presentation selectors removed.
type reverseIndex struct {
	exact map[string]string
	bare  map[string]string
}

// NewMap builds a Map from entries. A repeated name replaces the earlier
// glyph but keeps the position of the first occurrence. Entries with an
// empty name or glyph are ignored.
func NewMap(entries []Entry) *Map {
	m := &Map{
		names:  make([]string, 0, len(entries)),
		glyphs: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		m.add(e)
	}
	return m
}

// MapFromCodes builds a Map from an unordered name to glyph map such as the
// code maps shipped by emoji libraries. A surrounding pair of colons is
// stripped from names. Names are inserted in sorted order so the result is
// the same on every run.
func MapFromCodes(codes map[string]string) *Map {
	type code struct {
		raw string
		Entry
	}
	sorted := make([]code, 0, len(codes))
	for raw, glyph := range codes {
		sorted = append(sorted, code{raw: raw, Entry: Entry{Name: trimColons(raw), Glyph: glyph}})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].raw < sorted[j].raw
	})

	entries := make([]Entry, len(sorted))
	for i, c := range sorted {
		entries[i] = c.Entry
	}
	return NewMap(entries)
}

// With returns a new Map holding the entries of m followed by entries.
// Names already present in m are overridden in place.
func (m *Map) With(entries ...Entry) *Map {
	merged := make([]Entry, 0, m.Len()+len(entries))
	merged = append(merged, m.Entries()...)
	merged = append(merged, entries...)
	return NewMap(merged)
}

func (m *Map) add(e Entry) {
	if e.Name == "" || e.Glyph == "" {
		return
	}
	if _, ok := m.glyphs[e.Name]; !ok {
		m.names = append(m.names, e.Name)
	}
	m.glyphs[e.Name] = e.Glyph
}

// Glyph returns the glyph registered for name.
func (m *Map) Glyph(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	glyph, ok := m.glyphs[name]
	return glyph, ok
}

// Len returns the number of names in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Entries returns the contents of the map in insertion order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	entries := make([]Entry, len(m.names))
	for i, name := range m.names {
		entries[i] = Entry{Name: name, Glyph: m.glyphs[name]}
	}
	return entries
}

// name looks up the shortcode for glyph in the reverse index, building the
// index on first use. An exact match beats one found after dropping
// presentation selectors.
func (m *Map) name(glyph string) (string, bool) {
	if m == nil || glyph == "" {
		return "", false
	}

	m.reverseOnce.Do(m.buildReverse)
	if name, ok := m.reverse.exact[glyph]; ok {
		return name, true
	}
	name, ok := m.reverse.bare[stripPresentation(glyph)]
	return name, ok
}

func (m *Map) buildReverse() {
	m.reverse = reverseIndex{
		exact: make(map[string]string, len(m.names)),
		bare:  make(map[string]string, len(m.names)),
	}
	for _, name := range m.names {
		glyph := m.glyphs[name]
		if _, ok := m.reverse.exact[glyph]; !ok {
			m.reverse.exact[glyph] = name
		}
		bare := stripPresentation(glyph)
		if _, ok := m.reverse.bare[bare]; !ok {
			m.reverse.bare[bare] = name
		}
	}
}

func stripPresentation(glyph string) string {
	return strings.ReplaceAll(glyph, string(vs16), "")
}

func trimColons(name string) string {
	if len(name) > 2 && strings.HasPrefix(name, ":") && strings.HasSuffix(name, ":") {
		return name[1 : len(name)-1]
	}
	return name
}

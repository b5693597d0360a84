// Package content holds the category sections the splash balls navigate to.
package content

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned for a category with no section.
var ErrUnknownSection = errors.New("content: no content available for this category")

// Section is one category page: a title and a list of projects.
type Section struct {
	Key      string   `yaml:"key"`
	Title    string   `yaml:"title"`
	Projects []string `yaml:"projects"`
}

// Directory is an ordered set of sections keyed by category.
type Directory struct {
	order []string
	byKey map[string]Section
}

// NewDirectory indexes sections in order. A later section replaces an
// earlier one with the same key.
func NewDirectory(sections []Section) *Directory {
	d := &Directory{byKey: make(map[string]Section, len(sections))}
	for _, s := range sections {
		if _, ok := d.byKey[s.Key]; !ok {
			d.order = append(d.order, s.Key)
		}
		d.byKey[s.Key] = s
	}
	return d
}

func (d *Directory) Len() int { return len(d.order) }

// Keys returns section keys in insertion order.
func (d *Directory) Keys() []string {
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}

func (d *Directory) Lookup(key string) (Section, error) {
	s, ok := d.byKey[key]
	if !ok {
		return Section{}, fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	return s, nil
}

// Sections returns all sections in order.
func (d *Directory) Sections() []Section {
	out := make([]Section, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.byKey[k])
	}
	return out
}

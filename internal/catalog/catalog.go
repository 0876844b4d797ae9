// Package catalog holds the static set of bookkeeping question templates,
// the chart of accounts they draw from, and the narrative counterparties
// interpolated into problem text.
package catalog

import (
	"errors"
	"slices"
)

// ErrNoTemplates is returned when a kind filter excludes every template.
var ErrNoTemplates = errors.New("no templates available for the selected question kinds")

var all = func() []Template {
	var out []Template
	out = append(out, journalTemplates...)
	out = append(out, selectTemplates...)
	out = append(out, numericTemplates...)
	return out
}()

// Templates returns the templates whose kind is in kinds. An empty kinds
// list means no filter.
func Templates(kinds ...Kind) ([]Template, error) {
	if len(kinds) == 0 {
		return slices.Clone(all), nil
	}
	var out []Template
	for _, t := range all {
		if slices.Contains(kinds, t.Kind) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoTemplates
	}
	return out, nil
}

// ByID looks up a template by its stable identifier.
func ByID(id string) (Template, bool) {
	for _, t := range all {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Count returns the number of templates per kind.
func Count() map[Kind]int {
	counts := make(map[Kind]int, 3)
	for _, t := range all {
		counts[t.Kind]++
	}
	return counts
}

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Filter selects which todos are visible.
type Filter string

const (
	ShowAll  Filter = "SHOW ALL"
	ShowOpen Filter = "SHOW OPEN"
	ShowDone Filter = "SHOW DONE"
)

var ErrUnknownFilter = errors.New("unknown visibility filter")

// Filters returns the known filters in display order.
func Filters() []Filter {
	return []Filter{ShowAll, ShowOpen, ShowDone}
}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case ShowAll, ShowOpen, ShowDone:
		return true
	}
	return false
}

func (f Filter) String() string { return string(f) }

// Label is the short, human name of the filter ("All", "Open", "Done").
func (f Filter) Label() string {
	switch f {
	case ShowOpen:
		return "Open"
	case ShowDone:
		return "Done"
	}
	return "All"
}

// ParseFilter accepts the wire values ("SHOW OPEN") and the short forms
// ("open"), case-insensitively. Underscores and dashes count as spaces.
func ParseFilter(s string) (Filter, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	switch norm {
	case "ALL", string(ShowAll):
		return ShowAll, nil
	case "OPEN", "PENDING", string(ShowOpen):
		return ShowOpen, nil
	case "DONE", string(ShowDone):
		return ShowDone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

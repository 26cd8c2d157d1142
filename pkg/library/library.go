// Package library turns a flat list of install records into the numbered,
// grouped view the operator picks from.
//
// Numbering is recomputed from the records on every call and is never
// stored: groups follow the first appearance of each base directory, titles
// within a group are stably sorted case-insensitively, and the global index
// runs 1..N across groups in that order.
package library

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/types"
)

// Entry is a record with its display numbers
type Entry struct {
	// Global is the 1-based index across every group
	Global int
	// Local is the 1-based index within the entry's group
	Local  int
	Record types.InstallRecord
}

// Group is every record sharing a base directory
type Group struct {
	BaseDir string
	Entries []Entry
}

// GroupRecords groups records by base directory and numbers them
func GroupRecords(records []types.InstallRecord) []Group {
	var groups []Group
	byBase := make(map[string]int)

	for _, rec := range records {
		base := rec.BaseDir()
		idx, ok := byBase[base]
		if !ok {
			idx = len(groups)
			byBase[base] = idx
			groups = append(groups, Group{BaseDir: base})
		}
		groups[idx].Entries = append(groups[idx].Entries, Entry{Record: rec})
	}

	global := 1
	for gi := range groups {
		entries := groups[gi].Entries
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Record.Title) < strings.ToLower(entries[j].Record.Title)
		})
		for ei := range entries {
			entries[ei].Local = ei + 1
			entries[ei].Global = global
			global++
		}
	}

	return groups
}

// Entries flattens groups back into global index order
func Entries(groups []Group) []Entry {
	var out []Entry
	for _, g := range groups {
		out = append(out, g.Entries...)
	}
	return out
}

// Records returns the records in global index order
func Records(groups []Group) []types.InstallRecord {
	var out []types.InstallRecord
	for _, e := range Entries(groups) {
		out = append(out, e.Record)
	}
	return out
}

// Find returns the entry with the given global index
func Find(groups []Group, global int) (Entry, error) {
	for _, g := range groups {
		for _, e := range g.Entries {
			if e.Global == global {
				return e, nil
			}
		}
	}
	return Entry{}, errors.Newf(errors.ErrInvalidSelection, "no game with index %d", global).
		WithDetail("index", global)
}

// ParseIndex parses operator input as a global index
func ParseIndex(groups []Group, input string) (Entry, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return Entry{}, errors.Wrapf(err, errors.ErrInvalidSelection, "%q is not a valid index number", strings.TrimSpace(input))
	}
	return Find(groups, n)
}

// Package frequency counts occurrences of strings and orders them by frequency.
package frequency

import (
	"sort"
)

// Entry is a single key and how many times it was seen.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Table maps keys to occurrence counts and remembers first-seen order.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Count builds a table from keys.
func Count(keys []string) *Table {
	t := NewTable()
	for _, key := range keys {
		t.Add(key)
	}

	return t
}

// Add records one occurrence of key.
func (t *Table) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}

	t.counts[key]++
	t.total++
}

// Get returns the count for key, zero if it was never added.
func (t *Table) Get(key string) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the number of occurrences added.
func (t *Table) Total() int {
	return t.total
}

// MostCommon returns all entries by descending count. Equal counts keep the
// order in which their keys were first added.
func (t *Table) MostCommon() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, key := range t.order {
		entries = append(entries, Entry{Key: key, Count: t.counts[key]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}

// Top returns at most n entries from MostCommon. n <= 0 returns all of them.
func (t *Table) Top(n int) []Entry {
	entries := t.MostCommon()
	if n > 0 && n < len(entries) {
		return entries[:n]
	}

	return entries
}

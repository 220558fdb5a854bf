package domain

import (
	"math"
	"sort"
	"time"
)

// Table is a date-indexed, pair-column table of nullable prices. Rows are
// calendar days (UTC midnight); a nil cell means the value is missing for
// that date. Columns may lag behind Dates while a table is being built out
// of order; SortByDate pads them back to equal length.
type Table struct {
	Dates []time.Time
	Cols  map[Pair][]*float64
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{Cols: make(map[Pair][]*float64)}
}

// Day truncates t to UTC midnight, the row key granularity of all tables.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsEmpty reports whether the table has no rows or no columns.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Dates) == 0 || len(t.Cols) == 0
}

// Pairs returns the column keys in a stable sorted order.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t.Cols))
	for p := range t.Cols {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i] < pairs[j] })
	return pairs
}

// Cell returns the value at (row, pair), nil when the column is absent.
func (t *Table) Cell(row int, p Pair) *float64 {
	col, ok := t.Cols[p]
	if !ok || row < 0 || row >= len(col) {
		return nil
	}
	return col[row]
}

// SetCell grows the column to the table length if needed and stores v.
func (t *Table) SetCell(row int, p Pair, v *float64) {
	col := t.Cols[p]
	for len(col) < len(t.Dates) {
		col = append(col, nil)
	}
	col[row] = v
	t.Cols[p] = col
}

// padColumns grows every column to the table length, filling with nil.
// Union-building callers append dates for one pair after setting cells for
// another, so columns can be shorter than Dates until this runs.
func (t *Table) padColumns() {
	for p, col := range t.Cols {
		for len(col) < len(t.Dates) {
			col = append(col, nil)
		}
		t.Cols[p] = col
	}
}

// SortByDate reorders all rows chronologically ascending.
func (t *Table) SortByDate() {
	if t.IsEmpty() {
		return
	}
	t.padColumns()
	order := make([]int, len(t.Dates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return t.Dates[order[i]].Before(t.Dates[order[j]])
	})

	dates := make([]time.Time, len(t.Dates))
	for i, from := range order {
		dates[i] = t.Dates[from]
	}
	t.Dates = dates

	for p, col := range t.Cols {
		next := make([]*float64, len(col))
		for i, from := range order {
			next[i] = col[from]
		}
		t.Cols[p] = next
	}
}

// Merge combines t with newer into a fresh table covering the union of both
// date ranges. On a date present in both, the entire row from newer wins.
// The result is sorted ascending and contains each date exactly once.
func (t *Table) Merge(newer *Table) *Table {
	if t.IsEmpty() {
		return newer
	}
	if newer.IsEmpty() {
		return t
	}

	newerRows := make(map[time.Time]int, len(newer.Dates))
	for i, d := range newer.Dates {
		newerRows[Day(d)] = i
	}
	olderRows := make(map[time.Time]int, len(t.Dates))
	for i, d := range t.Dates {
		day := Day(d)
		if _, shadowed := newerRows[day]; !shadowed {
			olderRows[day] = i
		}
	}

	merged := NewTable()
	for p := range t.Cols {
		merged.Cols[p] = nil
	}
	for p := range newer.Cols {
		merged.Cols[p] = nil
	}

	copyRow := func(day time.Time, src *Table, row int) {
		merged.Dates = append(merged.Dates, day)
		at := len(merged.Dates) - 1
		for p := range merged.Cols {
			merged.SetCell(at, p, src.Cell(row, p))
		}
	}
	for day, row := range olderRows {
		copyRow(day, t, row)
	}
	for day, row := range newerRows {
		copyRow(day, newer, row)
	}

	merged.SortByDate()
	return merged
}

// DropAllNilRows removes rows where every column is missing.
func (t *Table) DropAllNilRows() {
	if t.IsEmpty() {
		return
	}
	keep := make([]int, 0, len(t.Dates))
	for i := range t.Dates {
		for _, col := range t.Cols {
			if i < len(col) && col[i] != nil {
				keep = append(keep, i)
				break
			}
		}
	}
	if len(keep) == len(t.Dates) {
		return
	}

	dates := make([]time.Time, len(keep))
	for to, from := range keep {
		dates[to] = t.Dates[from]
	}
	t.Dates = dates

	for p, col := range t.Cols {
		next := make([]*float64, len(keep))
		for to, from := range keep {
			if from < len(col) {
				next[to] = col[from]
			}
		}
		t.Cols[p] = next
	}
}

// LastValid returns the most recent finite positive value in the pair's
// column, nil when the column is absent or has no usable value.
func (t *Table) LastValid(p Pair) *float64 {
	if t.IsEmpty() {
		return nil
	}
	col, ok := t.Cols[p]
	if !ok {
		return nil
	}
	for i := len(col) - 1; i >= 0; i-- {
		v := col[i]
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
			continue
		}
		return v
	}
	return nil
}

// LatestDate returns the most recent row date, nil for an empty table.
func (t *Table) LatestDate() *time.Time {
	if t.IsEmpty() {
		return nil
	}
	latest := t.Dates[0]
	for _, d := range t.Dates[1:] {
		if d.After(latest) {
			latest = d
		}
	}
	return &latest
}

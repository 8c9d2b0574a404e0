// Package view provides the local projections applied between a store
// snapshot and the rendered table: stable keyed sorting and case-insensitive
// substring filtering. Projections never mutate their input.
package view

import (
	"sort"
	"strings"
	"time"
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Toggle flips a direction, the way clicking a column header does.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Compare is a three-way comparison over one sortable field.
type Compare[T any] func(a, b T) int

func ByString[T any](field func(T) string) Compare[T] {
	return func(a, b T) int {
		return strings.Compare(field(a), field(b))
	}
}

func ByNumber[T any](field func(T) float64) Compare[T] {
	return func(a, b T) int {
		switch av, bv := field(a), field(b); {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

func ByTime[T any](field func(T) time.Time) Compare[T] {
	return func(a, b T) int {
		return field(a).Compare(field(b))
	}
}

// Sort returns a sorted copy. The sort is stable, so equal keys keep their
// store order; toggling the direction reverses any run of distinct keys.
func Sort[T any](items []T, cmp Compare[T], dir Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Filter keeps items where any configured field contains term,
// case-insensitively. A blank term keeps everything. Field extractors return
// empty strings for absent values, so filtering never panics on sparse data.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]T, 0, len(items))
	if needle == "" {
		return append(out, items...)
	}
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

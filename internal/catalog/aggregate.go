package catalog

import (
	"encoding/json"
	"math"
)

// Every aggregate accepts an empty or nil collection and falls back to 0 or
// an empty result. Callers tell "no data" apart from a real 0 with Count.

func Count[T any](items []T) int { return len(items) }

func Sum[T any](items []T, f func(T) float64) float64 {
	var total float64
	for _, it := range items {
		total += f(it)
	}
	return total
}

func Average[T any](items []T, f func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return Sum(items, f) / float64(len(items))
}

func Min[T any](items []T, f func(T) float64) float64 {
	return MinOf(items, always(f))
}

func Max[T any](items []T, f func(T) float64) float64 {
	return MaxOf(items, always(f))
}

// MinOf is Min over the items for which f reports a value; items without one
// are skipped rather than counted as 0.
func MinOf[T any](items []T, f func(T) (float64, bool)) float64 {
	return extreme(items, f, func(v, best float64) bool { return v < best })
}

// MaxOf is the MinOf counterpart.
func MaxOf[T any](items []T, f func(T) (float64, bool)) float64 {
	return extreme(items, f, func(v, best float64) bool { return v > best })
}

// SumWhere totals f over the items that satisfy pred, e.g. revenue of
// approved bookings.
func SumWhere[T any](items []T, pred func(T) bool, f func(T) float64) float64 {
	var total float64
	for _, it := range items {
		if pred(it) {
			total += f(it)
		}
	}
	return total
}

// CountWhere counts the items that satisfy pred.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// KeyCount is one bucket of a GroupCount result.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counts is an ordered key→count mapping; keys keep first-seen order.
type Counts []KeyCount

// Get returns the count for key, 0 when absent.
func (c Counts) Get(key string) int {
	for _, kc := range c {
		if kc.Key == key {
			return kc.Count
		}
	}
	return 0
}

// Map returns the counts as a plain map, losing order.
func (c Counts) Map() map[string]int {
	m := make(map[string]int, len(c))
	for _, kc := range c {
		m[kc.Key] = kc.Count
	}
	return m
}

// MarshalJSON keeps an empty result as [] rather than null.
func (c Counts) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]KeyCount(c))
}

// GroupCount counts items per key in first-seen key order.
func GroupCount[T any](items []T, key func(T) string) Counts {
	out := Counts{}
	index := make(map[string]int)
	for _, it := range items {
		k := key(it)
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, KeyCount{Key: k, Count: 1})
	}
	return out
}

// Rate returns part/whole as a percentage rounded to two decimals, 0 when
// whole is 0.
func Rate(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return Round(part/whole*100, 2)
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func always[T any](f func(T) float64) func(T) (float64, bool) {
	return func(t T) (float64, bool) { return f(t), true }
}

func extreme[T any](items []T, f func(T) (float64, bool), better func(v, best float64) bool) float64 {
	var (
		best  float64
		found bool
	)
	for _, it := range items {
		v, ok := f(it)
		if !ok {
			continue
		}
		if !found || better(v, best) {
			best, found = v, true
		}
	}
	return best
}

// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package database

import "time"

// Window is an inclusive range of release years. All analytics aggregate
// over a trailing window so the charts are not dominated by a half-century
// of releases.
type Window struct {
	StartYear int
	EndYear   int
}

// WindowFor returns the trailing window of the given span ending at the
// current year. Future-dated releases fall outside the window; they are
// surfaced by the upcoming-premieres query instead.
func WindowFor(now time.Time, spanYears int) Window {
	end := now.Year()
	return Window{
		StartYear: end - spanYears + 1,
		EndYear:   end,
	}
}

// Valid reports whether the window is non-empty.
func (w Window) Valid() bool {
	return w.StartYear <= w.EndYear
}

// bucketStart floors a year to its interval bucket, e.g. 1997 with width 5
// buckets to 1995.
func bucketStart(year, width int) int {
	return (year / width) * width
}

// Buckets enumerates the interval starts covering the window, in ascending
// order. The buckets are contiguous and non-overlapping; together with
// zero-count gap filling they partition the windowed range.
func (w Window) Buckets(width int) []int {
	if !w.Valid() || width <= 0 {
		return nil
	}
	first := bucketStart(w.StartYear, width)
	last := bucketStart(w.EndYear, width)
	starts := make([]int, 0, (last-first)/width+1)
	for b := first; b <= last; b += width {
		starts = append(starts, b)
	}
	return starts
}

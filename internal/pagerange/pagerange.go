// Package pagerange computes which page buttons a pagination control shows.
// Long ranges are shortened with gap markers so the control stays a fixed width
// no matter how many pages exist.
package pagerange

import "strconv"

// window is the number of pages shown around the current page, excluding the
// first and last pages which are always present.
const window = 7

// Entry is one slot in a truncated page range: a page number, or Gap.
type Entry int

// Gap marks a run of two or more omitted pages.
const Gap Entry = 0

// IsGap reports whether e stands for omitted pages.
func (e Entry) IsGap() bool { return e == Gap }

// Page returns the page number, or 0 for a gap.
func (e Entry) Page() int { return int(e) }

func (e Entry) String() string {
	if e.IsGap() {
		return "…"
	}
	return strconv.Itoa(int(e))
}

// Truncate returns the page markers to render for the given position.
//
// The first and last pages are always included. Up to seven pages around
// current are shown; near either end the window slides rather than shrinks.
// A gap replaces omitted pages only when at least two are omitted, a single
// omitted page is shown as a number.
//
// Out-of-range input is clamped: total < 1 yields nil and current is forced
// into [1, total].
func Truncate(current, total int) []Entry {
	if total < 1 {
		return nil
	}
	current = clamp(current, 1, total)

	if total == 1 {
		return []Entry{1}
	}

	lo, hi := innerWindow(current, total)

	out := make([]Entry, 0, window+4)
	out = append(out, 1)

	if lo <= hi {
		switch {
		case lo == 3:
			out = append(out, 2)
		case lo > 3:
			out = append(out, Gap)
		}

		for p := lo; p <= hi; p++ {
			out = append(out, Entry(p))
		}

		switch {
		case hi == total-2:
			out = append(out, Entry(total-1))
		case hi < total-2:
			out = append(out, Gap)
		}
	}

	return append(out, Entry(total))
}

// innerWindow returns the inclusive bounds of the pages shown between the
// first and last page. lo > hi when there is nothing between them.
func innerWindow(current, total int) (lo, hi int) {
	first, last := 2, total-1
	if first > last {
		return first, last
	}

	lo = current - window/2
	hi = current + window/2

	if lo < first {
		hi += first - lo
		lo = first
	}
	if hi > last {
		lo -= hi - last
		hi = last
	}

	return max(lo, first), min(hi, last)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

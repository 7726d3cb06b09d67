package date

import "fmt"

// Range is an inclusive range of days.
type Range struct {
	From, To Date
}

// NewRange creates a range between two days, bounds included.
func NewRange(from, to Date) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains reports whether the day is within the range, bounds included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// Days returns the number of days in the range.
func (r Range) Days() int {
	n := 0
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		n++
	}
	return n
}

func (r Range) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return fmt.Sprintf("%s to %s", r.From, r.To)
}

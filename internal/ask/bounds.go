package ask

import "math"

// Bounds holds optional inclusive limits. For collection kinds they bound the
// number of entries; a range must overlap them.
type Bounds struct {
	Min *float64
	Max *float64
}

// Limit returns a pointer to v for use in Options.Min and Options.Max.
func Limit(v float64) *float64 {
	return &v
}

// satisfied reports whether a collection of size n may terminate.
func (b Bounds) satisfied(n int) bool {
	return b.Min == nil || float64(n) >= *b.Min
}

// full reports whether a collection of size n has reached its maximum.
func (b Bounds) full(n int) bool {
	return b.Max != nil && float64(n) >= math.Floor(*b.Max)
}

// reaches reports whether an ordered interval touches the configured limits:
// its end is at least Min and its start at most Max.
func (b Bounds) reaches(i Interval) bool {
	if i.Start > i.End {
		return false
	}
	if b.Min != nil && i.End < *b.Min {
		return false
	}
	if b.Max != nil && i.Start > *b.Max {
		return false
	}
	return true
}

// clone copies the limits so callers cannot mutate a question through them.
func (b Bounds) clone() Bounds {
	var out Bounds
	if b.Min != nil {
		out.Min = Limit(*b.Min)
	}
	if b.Max != nil {
		out.Max = Limit(*b.Max)
	}
	return out
}

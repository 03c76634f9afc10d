// Package filter contains the stateless filters applied before and during
// file scanning: path/size/binary filters that decide whether a file's bytes
// are worth loading at all, and the comment/entropy filters that gate
// individual matches.
package filter

// Decision is the outcome of a single filter check. Reason is only populated
// when Exclude is true and is used for verbose diagnostics.
type Decision struct {
	Exclude bool
	Reason  string
}

// exclude builds an excluding decision with the given reason.
func exclude(reason string) Decision {
	return Decision{Exclude: true, Reason: reason}
}

// include is the zero decision: the file passes this filter.
var include = Decision{}

package entities

import (
	"github.com/reglet-dev/locus/internal/domain/values"
)

// LocationRule decides whether a candidate location may be stored in a cell.
type LocationRule interface {
	// IsSatisfiedBy returns true if the location is acceptable,
	// along with a reason if not (or empty if satisfied).
	IsSatisfiedBy(loc values.Location) (bool, string)
}

// CellOption configures a LocationCell at construction time.
type CellOption func(*LocationCell)

// WithRule adds a rule checked after the non-zero rule on every Set.
// Nil rules are ignored.
func WithRule(rule LocationRule) CellOption {
	return func(c *LocationCell) {
		if rule != nil {
			c.rules = append(c.rules, rule)
		}
	}
}

// LocationCell guards a single Location so that every access is mediated.
//
// A new cell holds {0, 0}. That default does not satisfy the rule enforced by
// Set; the non-zero invariant holds only after the first successful Set.
//
// LocationCell is not safe for concurrent use.
type LocationCell struct {
	value values.Location
	rules []LocationRule
}

// NewLocationCell creates a cell holding the default location {0, 0}.
func NewLocationCell(opts ...CellOption) *LocationCell {
	c := &LocationCell{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a copy of the current location.
func (c *LocationCell) Get() values.Location {
	return c.value
}

// Set validates candidate and stores it.
// On rejection it returns an error matching ErrInvalidArgument and the
// previous location is kept.
func (c *LocationCell) Set(candidate values.Location) error {
	if candidate.IsZeroEquivalent() {
		return &InvalidLocationError{
			Candidate: candidate,
			Reason:    "x and y must both be non-zero",
		}
	}

	for _, rule := range c.rules {
		if ok, reason := rule.IsSatisfiedBy(candidate); !ok {
			return &InvalidLocationError{Candidate: candidate, Reason: reason}
		}
	}

	c.value = candidate
	return nil
}
